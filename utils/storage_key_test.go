package utils

import "testing"

func TestObjectKeyFromURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		bucket  string
		want    string
		wantErr bool
	}{
		{
			name:   "simple key",
			url:    "http://localhost:9000/video-motion/avatars/abc.png",
			bucket: "video-motion",
			want:   "avatars/abc.png",
		},
		{
			name:   "nested key",
			url:    "https://cdn.example.com/video-motion/videos/2024/clip.mp4",
			bucket: "video-motion",
			want:   "videos/2024/clip.mp4",
		},
		{
			name:    "wrong bucket",
			url:     "http://localhost:9000/other-bucket/avatars/abc.png",
			bucket:  "video-motion",
			wantErr: true,
		},
		{
			name:    "no key segment",
			url:     "http://localhost:9000/video-motion",
			bucket:  "video-motion",
			wantErr: true,
		},
		{
			name:    "empty url",
			url:     "",
			bucket:  "video-motion",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ObjectKeyFromURL(tt.url, tt.bucket)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got key %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("object key: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q got %q", tt.want, got)
			}
		})
	}
}
