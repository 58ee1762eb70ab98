// Package reddit implements the forum search provider. It searches a fixed
// set of subreddits for posts mentioning a ticker and applies the exact
// whole-word mention check the upstream search API does not guarantee.
package reddit

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/vartanbeno/go-reddit/v2/reddit"
	"golang.org/x/time/rate"

	"github.com/zaraumer/SentimentVSROI/internal/domain"
	"github.com/zaraumer/SentimentVSROI/internal/metrics"
)

const providerName = "reddit"

// postsPerCommunity caps how many search results are requested per
// subreddit, matching Reddit's per-request listing maximum.
const postsPerCommunity = 100

// Credentials configures an authenticated script app. Zero value means the
// read-only public API.
type Credentials struct {
	ID        string
	Secret    string
	Username  string
	Password  string
	UserAgent string
}

// Provider searches subreddits for ticker mentions.
type Provider struct {
	client     *reddit.Client
	limiter    *rate.Limiter
	subreddits []string
	loc        *time.Location
}

// NewProvider builds a provider over the given communities. With full script
// credentials it authenticates; otherwise it uses the read-only client.
// Outbound search calls are rate limited to stay inside Reddit's API budget.
func NewProvider(creds Credentials, subreddits []string, loc *time.Location) (*Provider, error) {
	var (
		client *reddit.Client
		err    error
	)
	if creds.ID != "" && creds.Secret != "" && creds.Username != "" && creds.Password != "" {
		client, err = reddit.NewClient(reddit.Credentials{
			ID:       creds.ID,
			Secret:   creds.Secret,
			Username: creds.Username,
			Password: creds.Password,
		}, reddit.WithUserAgent(creds.UserAgent))
	} else {
		client, err = reddit.NewReadonlyClient(reddit.WithUserAgent(creds.UserAgent))
	}
	if err != nil {
		return nil, fmt.Errorf("creating reddit client: %w", err)
	}

	return &Provider{
		client:     client,
		limiter:    rate.NewLimiter(rate.Every(time.Second), 2),
		subreddits: subreddits,
		loc:        loc,
	}, nil
}

// Search returns posts from the configured subreddits that mention the
// ticker as a whole word in title or body and were created within
// [start, end]. Reddit's own relevance search over-matches, so both the
// window filter and the mention check run client-side.
func (p *Provider) Search(ctx context.Context, ticker string, start, end time.Time) ([]domain.Post, error) {
	mention, err := mentionPattern(ticker)
	if err != nil {
		return nil, err
	}

	var posts []domain.Post
	for _, sub := range p.subreddits {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}

		timer := time.Now()
		found, _, err := p.client.Subreddit.SearchPosts(ctx, ticker, sub, &reddit.ListPostSearchOptions{
			ListPostOptions: reddit.ListPostOptions{
				ListOptions: reddit.ListOptions{Limit: postsPerCommunity},
				Time:        "month",
			},
		})
		metrics.UpstreamRequestDuration.WithLabelValues(providerName).Observe(time.Since(timer).Seconds())
		if err != nil {
			metrics.UpstreamRequestsTotal.WithLabelValues(providerName, "error").Inc()
			return nil, fmt.Errorf("searching r/%s for %s: %w", sub, ticker, err)
		}
		metrics.UpstreamRequestsTotal.WithLabelValues(providerName, "ok").Inc()

		posts = append(posts, convert(found, mention, start, end, p.loc)...)
	}
	return posts, nil
}

// mentionPattern compiles a case-insensitive whole-word matcher for the
// ticker symbol.
func mentionPattern(ticker string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(ticker) + `\b`)
	if err != nil {
		return nil, fmt.Errorf("compiling ticker pattern for %q: %w", ticker, err)
	}
	return re, nil
}

func convert(found []*reddit.Post, mention *regexp.Regexp, start, end time.Time, loc *time.Location) []domain.Post {
	posts := make([]domain.Post, 0, len(found))
	for _, rp := range found {
		if rp == nil || rp.Created == nil {
			continue
		}
		createdAt := rp.Created.Time
		if createdAt.Before(start) || createdAt.After(end) {
			continue
		}
		if !mention.MatchString(rp.Title + " " + rp.Body) {
			continue
		}
		posts = append(posts, domain.Post{
			Title:     rp.Title,
			Body:      rp.Body,
			CreatedAt: createdAt,
			Score:     rp.Score,
			Date:      domain.DateOf(createdAt, loc),
		})
	}
	return posts
}
