package service

import "github.com/JMirval/watchmapper-sub001/internal/model"

// AggregateRatings reduces a shop's review set to count and mean rating.
// The empty set averages to exactly 0, never NaN; the rating-floor filter
// downstream compares against that zero.
func AggregateRatings(reviews []model.Review) (count int, average float64) {
	count = len(reviews)
	if count == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return count, float64(sum) / float64(count)
}
