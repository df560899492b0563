package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/creatorlens/creatorlens/internal/apperr"
	"github.com/creatorlens/creatorlens/internal/model"
)

// channelIDRe matches canonical YouTube channel IDs: a fixed "UC" prefix
// followed by 22 characters of the ID alphabet.
var channelIDRe = regexp.MustCompile(`^UC[A-Za-z0-9_-]{22}$`)

// SearchCandidateLimit bounds how many candidates a name search requests.
const SearchCandidateLimit = 3

// Resolution is the outcome of resolving free-text input. Exactly one of
// the two fields is populated: ChannelID when the input was already a
// canonical ID, Candidates when a name search ran.
type Resolution struct {
	ChannelID  string
	Candidates []model.Candidate
}

type ResolverService struct {
	client MetricsClient
}

func NewResolverService(client MetricsClient) *ResolverService {
	return &ResolverService{client: client}
}

// Resolve turns raw user input into a canonical channel ID or a ranked
// candidate list. Input already shaped like a canonical ID is returned
// without any network call; anything else goes through a bounded name
// search. Zero search hits is a NotFound.
func (s *ResolverService) Resolve(ctx context.Context, input string) (*Resolution, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, apperr.Validation("input is required")
	}

	if channelIDRe.MatchString(input) {
		return &Resolution{ChannelID: input}, nil
	}

	candidates, err := s.client.Search(ctx, input, SearchCandidateLimit)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, apperr.NotFound("no channel matches %q", input)
	}
	return &Resolution{Candidates: candidates}, nil
}

// First returns the canonical ID this resolution settles on: the direct ID,
// or the top-ranked search candidate. Auto-selecting the first candidate
// trusts the search API's own relevance ranking; ambiguous names can pick
// the wrong channel.
func (r *Resolution) First() string {
	if r.ChannelID != "" {
		return r.ChannelID
	}
	if len(r.Candidates) > 0 {
		return r.Candidates[0].ChannelID
	}
	return ""
}
