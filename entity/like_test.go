package entity

import "testing"

func TestValidLikeTarget(t *testing.T) {
	for _, target := range []string{LikeTargetVideo, LikeTargetComment, LikeTargetTweet} {
		if !ValidLikeTarget(target) {
			t.Fatalf("expected %q to be a valid target", target)
		}
	}
	for _, target := range []string{"", "playlist", "VIDEO"} {
		if ValidLikeTarget(target) {
			t.Fatalf("expected %q to be rejected", target)
		}
	}
}
