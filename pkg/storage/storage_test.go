package storage

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyStore struct {
	err   error
	calls int
}

func (f *flakyStore) Put(_ context.Context, key, _ string, _ []byte) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example.com/" + key, nil
}

func (f *flakyStore) Delete(context.Context, string) error {
	f.calls++
	return f.err
}

func TestBreakerStoreOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &flakyStore{err: errors.New("connection refused")}
	store := NewBreakerStore(inner, "test-uploads")
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := store.Put(ctx, "k", "image/jpeg", nil)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnavailable)
	}

	_, err := store.Put(ctx, "k", "image/jpeg", nil)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 6, inner.calls, "open breaker does not reach the store")
	assert.Equal(t, "open", store.State())
}

func TestBreakerStorePassesThrough(t *testing.T) {
	store := NewBreakerStore(&flakyStore{}, "ok")
	url, err := store.Put(context.Background(), "avatar/u1/x.jpg", "image/jpeg", []byte{1})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatar/u1/x.jpg", url)
}

func TestCompressImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2400, 600))
	for x := 0; x < 2400; x++ {
		src.Set(x, 10, color.NRGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	out, err := CompressImage(buf.Bytes(), MaxImageDimension, JPEGQuality)
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 300, cfg.Height)

	_, err = CompressImage([]byte("not an image"), MaxImageDimension, JPEGQuality)
	assert.Error(t, err)
}

// pngWithDimensions rewrites the IHDR of a tiny PNG so the header claims
// width x height while the payload stays a few bytes.
func pngWithDimensions(t *testing.T, width, height uint32) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))))
	data := buf.Bytes()
	require.Equal(t, "IHDR", string(data[12:16]))

	binary.BigEndian.PutUint32(data[16:20], width)
	binary.BigEndian.PutUint32(data[20:24], height)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestCompressImageRejectsHugeDimensions(t *testing.T) {
	for _, tt := range []struct {
		name          string
		width, height uint32
	}{
		{"square", 12000, 12000},
		{"one long side", 9000, 10},
		{"pixel budget", 7000, 7000},
	} {
		t.Run(tt.name, func(t *testing.T) {
			data := pngWithDimensions(t, tt.width, tt.height)

			cfg, err := png.DecodeConfig(bytes.NewReader(data))
			require.NoError(t, err)
			require.Equal(t, int(tt.width), cfg.Width)

			_, err = CompressImage(data, MaxImageDimension, JPEGQuality)
			assert.ErrorIs(t, err, ErrImageTooLarge)
		})
	}
}

func TestFit(t *testing.T) {
	w, h := fit(800, 600, 1200)
	assert.Equal(t, [2]int{800, 600}, [2]int{w, h})
	w, h = fit(1000, 3000, 1200)
	assert.Equal(t, [2]int{400, 1200}, [2]int{w, h})
}

func TestKeys(t *testing.T) {
	key := ObjectKey("avatar", "../u1", ".JPG")
	assert.Regexp(t, regexp.MustCompile(`^avatar/u1/[0-9a-f-]{36}\.jpg$`), key)

	assert.Equal(t, "Mon_CV_2024.pdf", SanitizeFilename("Mon CV 2024.pdf"))
	assert.Equal(t, "file", SanitizeFilename("éé.exe!"))
	assert.Equal(t, "", SanitizeExt(".p/f"))

	assert.Equal(t, "https://cdn.example.com/cv/u1/a%20b.pdf", PublicURL("https://cdn.example.com", "cv/u1/a b.pdf"))
	assert.Equal(t, "http://minio:9000/jobs", publicBaseURL(S3Config{Endpoint: "http://minio:9000/", Bucket: "jobs"}))
	assert.Equal(t, "https://jobs.s3.eu-west-1.amazonaws.com", publicBaseURL(S3Config{Bucket: "jobs", Region: "eu-west-1"}))
}

func TestDisabledStore(t *testing.T) {
	s := Disabled()
	_, err := s.Put(context.Background(), "cv/u/x.pdf", "application/pdf", []byte("x"))
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, s.Delete(context.Background(), "cv/u/x.pdf"), ErrNotConfigured)

	_, err = NewS3Store(context.Background(), S3Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
