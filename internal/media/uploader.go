package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/harshitgawli/Turf-Booking/internal/config"
	"github.com/harshitgawli/Turf-Booking/internal/httperr"
)

const maxWidth = 1600

// Uploader re-encodes venue photos as webp and stores them in S3.
type Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewUploader(cfg *config.Config) *Uploader {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	return &Uploader{
		client:  s3.New(opts),
		bucket:  cfg.S3Bucket,
		baseURL: strings.TrimRight(cfg.MediaBaseURL, "/"),
	}
}

// UploadImage decodes the image, downscales it to maxWidth when wider,
// encodes webp and puts the object under a random key. It returns the
// object key and the public URL.
func (u *Uploader) UploadImage(ctx context.Context, r io.Reader) (string, string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", "", httperr.ErrBusiness("invalid_image")
	}

	if w := src.Bounds().Dx(); w > maxWidth {
		h := src.Bounds().Dy() * maxWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 80}); err != nil {
		return "", "", err
	}

	key := fmt.Sprintf("photos/%s.webp", uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", "", err
	}

	return key, u.baseURL + "/" + key, nil
}
