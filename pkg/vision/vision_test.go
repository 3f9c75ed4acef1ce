package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/propsheet/brochure"
)

func tempPhotos(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		err := os.WriteFile(path, []byte("not a real jpeg"), 0644)
		if err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	return paths
}

func TestAnalyze(t *testing.T) {
	assert := assert.New(t)

	var gotFiles []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("POST", r.Method)
		assert.Equal("/analyze-images", r.URL.Path)

		err := r.ParseMultipartForm(1 << 20)
		assert.Nil(err)
		for _, fh := range r.MultipartForm.File["files[]"] {
			gotFiles = append(gotFiles, fh.Filename)
		}

		results := []Analysis{
			{RoomType: "modern kitchen", Attributes: []string{"island"}, Caption: "A bright kitchen"},
			{RoomType: "master bedroom"},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	}))
	defer srv.Close()

	paths := tempPhotos(t, "kitchen.jpg", "bed.jpg")

	client := NewClient(srv.URL)
	results, err := client.Analyze(context.Background(), paths)
	assert.Nil(err)
	assert.Equal(2, len(results))
	assert.Equal("modern kitchen", results[0].RoomType)
	assert.Equal([]string{"island"}, results[0].Attributes)
	assert.Equal([]string{"kitchen.jpg", "bed.jpg"}, gotFiles)
}

func TestAnalyzeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	paths := tempPhotos(t, "a.jpg")

	client := NewClient(srv.URL)
	_, err := client.Analyze(context.Background(), paths)
	assert.NotNil(t, err)
}

func TestAnalyzeLengthMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Analysis{{RoomType: "kitchen"}})
	}))
	defer srv.Close()

	paths := tempPhotos(t, "a.jpg", "b.jpg")

	client := NewClient(srv.URL)
	_, err := client.Analyze(context.Background(), paths)
	assert.NotNil(t, err)
	assert.True(t, brochure.IsValidationError(err))
}

func TestAnalyzeMissingFile(t *testing.T) {
	client := NewClient("http://localhost:1")
	_, err := client.Analyze(context.Background(), []string{"/no/such/file.jpg"})
	assert.NotNil(t, err)
}
