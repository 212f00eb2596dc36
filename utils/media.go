package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var mediaClient *s3.Client
var mediaBucket string
var mediaBaseURL string

// InitMediaStore wires the S3-compatible object store used for activity and
// post imagery. All of MEDIA_ENDPOINT, MEDIA_ACCESS_KEY_ID,
// MEDIA_ACCESS_KEY_SECRET and MEDIA_BUCKET_NAME must be set; otherwise the
// store stays disabled and uploads fall back to local disk.
func InitMediaStore() error {
	endpoint := os.Getenv("MEDIA_ENDPOINT")
	accessKeyID := os.Getenv("MEDIA_ACCESS_KEY_ID")
	accessKeySecret := os.Getenv("MEDIA_ACCESS_KEY_SECRET")
	mediaBucket = os.Getenv("MEDIA_BUCKET_NAME")
	mediaBaseURL = os.Getenv("MEDIA_CDN_BASE_URL")

	if endpoint == "" || accessKeyID == "" || accessKeySecret == "" || mediaBucket == "" {
		log.Println("⚠️  Media store not configured — image uploads use local disk")
		return nil
	}
	if mediaBaseURL == "" {
		mediaBaseURL = fmt.Sprintf("%s/%s", endpoint, mediaBucket)
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("auto"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID, accessKeySecret, "",
		)),
	)
	if err != nil {
		return fmt.Errorf("failed to load media store config: %w", err)
	}

	mediaClient = s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})
	log.Printf("✅ Media store ready (bucket: %s)", mediaBucket)
	return nil
}

// MediaStoreEnabled reports whether uploads go to object storage.
func MediaStoreEnabled() bool {
	return mediaClient != nil
}

// UploadImage stores an uploaded image under key and returns its public URL.
// key is the object key, e.g. "images/abc123.png".
func UploadImage(fileHeader *multipart.FileHeader, key string) (string, error) {
	if mediaClient == nil {
		return saveLocalImage(fileHeader, key)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	_, err = mediaClient.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(mediaBucket),
		Key:         aws.String(key),
		Body:        buf,
		ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return fmt.Sprintf("%s/%s", mediaBaseURL, key), nil
}
