// internal/posts/upload.go
package posts

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"
)

// Uploader stores a composed image and returns its public URL
type Uploader interface {
	Upload(file io.Reader, filename, contentType string, size int64) (string, error)
}

type UploadConfig struct {
	UseS3          bool
	S3Bucket       string
	AWSRegion      string
	LocalUploadDir string
	BaseURL        string
	MaxSize        int64
}

type UploadService struct {
	s3Client   s3iface.S3API
	bucketName string
	baseURL    string
	uploadDir  string // For local storage
	useS3      bool
	maxSize    int64
	now        func() time.Time
}

func NewUploadService(config UploadConfig) (*UploadService, error) {
	us := &UploadService{
		bucketName: config.S3Bucket,
		baseURL:    config.BaseURL,
		uploadDir:  config.LocalUploadDir,
		useS3:      config.UseS3,
		maxSize:    config.MaxSize,
		now:        time.Now,
	}
	if us.maxSize <= 0 {
		us.maxSize = 10 << 20
	}

	if config.UseS3 {
		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(config.AWSRegion),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %w", err)
		}
		us.s3Client = s3.New(sess)
		return us, nil
	}

	// Create upload directory if it doesn't exist
	if err := os.MkdirAll(config.LocalUploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return us, nil
}

func (us *UploadService) Upload(file io.Reader, filename, contentType string, size int64) (string, error) {
	if err := us.validateFile(filename, size); err != nil {
		return "", err
	}

	name := us.generateFilename(filename)

	if us.useS3 {
		return us.uploadToS3(file, name, contentType)
	}

	return us.uploadToLocal(file, name)
}

func (us *UploadService) uploadToS3(file io.Reader, filename, contentType string) (string, error) {
	buffer := bytes.NewBuffer(nil)
	if _, err := io.Copy(buffer, file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	key := fmt.Sprintf("posts/%s/%s", us.now().Format("2006/01/02"), filename)

	_, err := us.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:             aws.String(us.bucketName),
		Key:                aws.String(key),
		Body:               bytes.NewReader(buffer.Bytes()),
		ContentType:        aws.String(contentType),
		ContentDisposition: aws.String("inline"),
		ACL:                aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", us.bucketName, key), nil
}

func (us *UploadService) uploadToLocal(file io.Reader, filename string) (string, error) {
	dateDir := us.now().Format("2006/01/02")
	fullDir := filepath.Join(us.uploadDir, "posts", filepath.FromSlash(dateDir))

	if err := os.MkdirAll(fullDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dest, err := os.Create(filepath.Join(fullDir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, file); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return fmt.Sprintf("%s/uploads/posts/%s/%s", us.baseURL, dateDir, filename), nil
}

func (us *UploadService) validateFile(filename string, size int64) error {
	if size > us.maxSize {
		return fmt.Errorf("%w of %d bytes", ErrFileTooLarge, us.maxSize)
	}

	// Composed posts are always photos
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return nil
	default:
		return ErrFileTypeInvalid
	}
}

func (us *UploadService) generateFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s_%d%s", uuid.New().String(), us.now().Unix(), ext)
}
