package service

import (
	"math"
	"testing"

	"github.com/JMirval/watchmapper-sub001/internal/model"
)

func TestAggregateRatingsEmpty(t *testing.T) {
	count, average := AggregateRatings(nil)
	if count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}
	if average != 0 {
		t.Fatalf("average = %v, want exactly 0", average)
	}
	if math.IsNaN(average) {
		t.Fatal("average is NaN for empty set")
	}
}

func TestAggregateRatingsMean(t *testing.T) {
	reviews := []model.Review{{Rating: 5}, {Rating: 3}, {Rating: 4}}
	count, average := AggregateRatings(reviews)
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
	if average != 4.0 {
		t.Fatalf("average = %v, want exactly 4.0", average)
	}
}

func TestAggregateRatingsSingle(t *testing.T) {
	count, average := AggregateRatings([]model.Review{{Rating: 2}})
	if count != 1 || average != 2.0 {
		t.Fatalf("got (%d, %v), want (1, 2.0)", count, average)
	}
}
