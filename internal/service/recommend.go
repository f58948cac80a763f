package service

const msgRecommendPlaceholder = "おすすめ機能は現在準備中です。今後のアップデートをお待ちください。"

// Recommender produces viewing recommendations.
type Recommender interface {
	Recommend() string
}

// recommender is the current placeholder implementation.
type recommender struct{}

// NewRecommender creates a new Recommender.
func NewRecommender() Recommender {
	return &recommender{}
}

// Recommend returns a fixed placeholder until the feature exists.
func (recommender) Recommend() string {
	return msgRecommendPlaceholder
}
