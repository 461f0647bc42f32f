// Package stats aggregates the reviews of a single game.
package stats

import (
	"math"

	"gamestore/backend/internal/models"
)

// ReviewSummary is the aggregate shown above a game's review list.
type ReviewSummary struct {
	Total                 int     `json:"total"`
	AverageRating         float64 `json:"average_rating"`
	RoundedRating         int     `json:"rounded_rating"`
	Recommended           int     `json:"recommended"`
	RecommendationPercent int     `json:"recommendation_percent"`
}

// Summarize computes the mean rating and recommendation share.
// With no reviews every field is zero.
func Summarize(reviews []models.Review) ReviewSummary {
	if len(reviews) == 0 {
		return ReviewSummary{}
	}
	var sum, recommended int
	for _, r := range reviews {
		sum += r.Rating
		if r.IsRecommended {
			recommended++
		}
	}
	total := len(reviews)
	avg := float64(sum) / float64(total)
	return ReviewSummary{
		Total:                 total,
		AverageRating:         avg,
		RoundedRating:         int(math.Round(avg)),
		Recommended:           recommended,
		RecommendationPercent: int(math.Round(100 * float64(recommended) / float64(total))),
	}
}

// FindByAuthor returns the review written by userID, or nil.
func FindByAuthor(reviews []models.Review, userID string) *models.Review {
	if userID == "" {
		return nil
	}
	for i := range reviews {
		if reviews[i].UserID == userID {
			return &reviews[i]
		}
	}
	return nil
}
