package oss

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/minio/minio-go/v7"
)

const (
	pictureBucket = "picture"
	videoBucket   = "video"
	region        = "us-east-1"
)

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

func imageSuffix(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	default:
		return "", fmt.Errorf("unsupported image format: %s", contentType)
	}
}

// UploadAvatar replaces the user's avatar object and returns its public URL.
func UploadAvatar(ctx context.Context, data []byte, uid string, contentType string) (string, error) {
	return uploadPicture(ctx, data, "avatar/"+uid, contentType)
}

// UploadCover replaces the user's cover image and returns its public URL.
func UploadCover(ctx context.Context, data []byte, uid string, contentType string) (string, error) {
	return uploadPicture(ctx, data, "cover/"+uid, contentType)
}

func uploadPicture(ctx context.Context, data []byte, objectBase, contentType string) (string, error) {
	if err := ensureBucket(ctx, pictureBucket); err != nil {
		return "", err
	}
	suffix, err := imageSuffix(contentType)
	if err != nil {
		return "", err
	}

	// drop the previous object regardless of its extension
	for _, old := range []string{objectBase + ".jpg", objectBase + ".png"} {
		_ = minioClient.RemoveObject(ctx, pictureBucket, old, minio.RemoveObjectOptions{})
	}

	objectName := objectBase + suffix
	_, err = minioClient.PutObject(ctx, pictureBucket, objectName,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload picture error: %w", err)
	}

	return publicURL(pictureBucket, objectName), nil
}

// UploadVideo streams a local file into the video bucket and returns its
// public URL.
func UploadVideo(ctx context.Context, path, vid string) (string, error) {
	if err := ensureBucket(ctx, videoBucket); err != nil {
		return "", err
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open video file error: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("stat video file error: %w", err)
	}

	objectName := "video/" + vid + "/video.mp4"
	_, err = minioClient.PutObject(ctx, videoBucket, objectName, file, stat.Size(),
		minio.PutObjectOptions{ContentType: "video/mp4"})
	if err != nil {
		return "", fmt.Errorf("upload video error: %w", err)
	}

	return publicURL(videoBucket, objectName), nil
}

func publicURL(bucketName, objectName string) string {
	return fmt.Sprintf("http://%s/%s/%s", minioClient.EndpointURL().Host, bucketName, objectName)
}
