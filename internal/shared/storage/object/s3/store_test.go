package s3

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "user/file.pdf", want: "user/file.pdf"},
		{name: "simple prefix", prefix: "root", key: "user/file.pdf", want: "root/user/file.pdf"},
		{name: "prefix trailing slash", prefix: "root/", key: "user/file.pdf", want: "root/user/file.pdf"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/user/file.pdf", want: "root/user/file.pdf"},
		{name: "nested prefix", prefix: "root/sub", key: "user/file.pdf", want: "root/sub/user/file.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestApplyEncryption(t *testing.T) {
	t.Parallel()

	withKMS := &Store{kmsKeyID: "key-1"}
	input := &s3.PutObjectInput{}
	withKMS.applyEncryption(input)
	if input.ServerSideEncryption != s3types.ServerSideEncryptionAwsKms || aws.ToString(input.SSEKMSKeyId) != "key-1" {
		t.Fatalf("expected kms encryption, got %v %v", input.ServerSideEncryption, aws.ToString(input.SSEKMSKeyId))
	}

	plain := &Store{}
	input = &s3.PutObjectInput{}
	plain.applyEncryption(input)
	if input.ServerSideEncryption != s3types.ServerSideEncryptionAes256 || input.SSEKMSKeyId != nil {
		t.Fatalf("expected AES256 encryption, got %v", input.ServerSideEncryption)
	}
}

func TestNormalizePrefix(t *testing.T) {
	t.Parallel()
	if got := normalizePrefix("  /generated/ "); got != "generated" {
		t.Fatalf("normalizePrefix = %q", got)
	}
}
