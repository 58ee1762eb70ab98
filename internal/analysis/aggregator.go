package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/zaraumer/SentimentVSROI/internal/domain"
)

// minPosts is the minimum number of qualifying posts required before any
// scoring is attempted.
const minPosts = 20

// maxConcurrentScores bounds parallel sentiment scoring. Scoring is a pure
// function, so goroutines need no synchronization beyond the result slots.
const maxConcurrentScores = 8

// AggregateDailySentiment scores each post's title+body and reduces the
// scores to one arithmetic mean per calendar date.
//
// Returns domain.ErrInsufficientSocialData when fewer than minPosts posts
// were supplied; the check runs before any scoring since it is cheap.
func AggregateDailySentiment(ctx context.Context, posts []domain.Post, scorer domain.SentimentScorer) (domain.DailySentiment, error) {
	if len(posts) < minPosts {
		return nil, domain.ErrInsufficientSocialData
	}

	samples := make([]domain.SentimentSample, len(posts))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScores)
	for i, post := range posts {
		i, post := i, post
		g.Go(func() error {
			samples[i] = domain.SentimentSample{
				Date:     post.Date,
				Compound: scorer.Compound(post.Text()),
			}
			return nil
		})
	}
	// Scoring never fails; the group is used only for bounded parallelism.
	_ = g.Wait()

	sums := make(map[domain.Date]float64)
	counts := make(map[domain.Date]int)
	for _, s := range samples {
		sums[s.Date] += s.Compound
		counts[s.Date]++
	}

	daily := make(domain.DailySentiment, len(sums))
	for date, sum := range sums {
		daily[date] = sum / float64(counts[date])
	}
	return daily, nil
}
