package services

import (
	"strings"

	"fooddelivery/internal/core/domain/model/review"
)

// RestaurantHistoryDepth is how many of a restaurant's latest comments are compared against.
const RestaurantHistoryDepth = 50

var defaultStopWords = []string{
	"работа", "заработок", "казино", "ставки", "http", "https", "купите", "вступите", "tg", "bot",
}

// ReviewModerator bans comments that contain a stop word or repeat an earlier comment.
type ReviewModerator struct {
	stopWords []string
}

func NewReviewModerator() ReviewModerator {
	return ReviewModerator{stopWords: defaultStopWords}
}

// Moderate checks stop words first, then the author's own comments, then the
// restaurant's recent comments. Comparisons ignore case.
func (m ReviewModerator) Moderate(comment string, userComments, restaurantComments []string) review.Verdict {
	lowered := strings.ToLower(comment)
	for _, w := range m.stopWords {
		if strings.Contains(lowered, w) {
			return review.Banned
		}
	}
	if repeats(comment, userComments) || repeats(comment, restaurantComments) {
		return review.Banned
	}
	return review.Approved
}

func repeats(comment string, history []string) bool {
	for _, h := range history {
		if strings.EqualFold(h, comment) {
			return true
		}
	}
	return false
}
