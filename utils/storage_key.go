package utils

import (
	"errors"
	"net/url"
	"strings"
)

// ObjectKeyFromURL recovers the object key from a public asset URL of the
// form <public-url>/<bucket>/<folder>/<file>. The first path segment is
// the bucket, the rest is the key.
func ObjectKeyFromURL(assetURL, bucket string) (string, error) {
	if assetURL == "" {
		return "", errors.New("asset URL is empty")
	}

	parsed, err := url.Parse(assetURL)
	if err != nil {
		return "", err
	}

	segments := strings.Split(strings.TrimPrefix(parsed.Path, "/"), "/")
	if len(segments) < 2 || segments[0] != bucket {
		return "", errors.New("asset URL does not belong to bucket " + bucket)
	}

	return strings.Join(segments[1:], "/"), nil
}
