package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"

	"rift-rewind/internal/config"
	"rift-rewind/internal/constants"
)

// RiotClient talks to the Riot Games API. It attaches the API key and decodes
// payloads; pacing is the caller's job (see ratelimit.Limiter), this client
// only reports 429s back as *Error values.
type RiotClient struct {
	apiKey string
	client *fasthttp.Client
}

func NewRiotClient(cfg *config.Config) *RiotClient {
	return &RiotClient{
		apiKey: cfg.RiotAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func regionalHost(platform string) (string, error) {
	region, err := PlatformRegion(platform)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://%s.api.riotgames.com", region), nil
}

func platformHost(platform string) string {
	return fmt.Sprintf("https://%s.api.riotgames.com", platform)
}

// GetAccountByRiotID resolves a Riot ID (game name + tag line) to an account.
// Routed regionally, derived from the platform.
func (c *RiotClient) GetAccountByRiotID(ctx context.Context, platform, gameName, tagLine string) (*Account, error) {
	host, err := regionalHost(platform)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		host, url.PathEscape(gameName), url.PathEscape(tagLine))
	return doRequest[Account](ctx, c, u, "account")
}

func (c *RiotClient) GetSummonerByPUUID(ctx context.Context, platform, puuid string) (*Summoner, error) {
	u := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s", platformHost(platform), puuid)
	return doRequest[Summoner](ctx, c, u, "summoner")
}

func (c *RiotClient) GetLeagueEntriesByPUUID(ctx context.Context, platform, puuid string) ([]LeagueEntry, error) {
	u := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s", platformHost(platform), puuid)
	entries, err := doRequest[[]LeagueEntry](ctx, c, u, "league")
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

// MatchIDsOptions narrows a match ID listing. StartTime and EndTime are epoch
// seconds; zero values are omitted from the query.
type MatchIDsOptions struct {
	Start     int
	Count     int
	Queue     int
	StartTime int64
	EndTime   int64
}

func (c *RiotClient) GetMatchIDs(ctx context.Context, platform, puuid string, opts MatchIDsOptions) ([]string, error) {
	host, err := regionalHost(platform)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("start", strconv.Itoa(opts.Start))
	if opts.Count > 0 {
		q.Set("count", strconv.Itoa(opts.Count))
	}
	if opts.Queue > 0 {
		q.Set("queue", strconv.Itoa(opts.Queue))
	}
	if opts.StartTime > 0 {
		q.Set("startTime", strconv.FormatInt(opts.StartTime, 10))
	}
	if opts.EndTime > 0 {
		q.Set("endTime", strconv.FormatInt(opts.EndTime, 10))
	}

	u := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?%s", host, puuid, q.Encode())
	ids, err := doRequest[[]string](ctx, c, u, "match_ids")
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

func (c *RiotClient) GetMatch(ctx context.Context, platform, matchID string) (*Match, error) {
	host, err := regionalHost(platform)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/lol/match/v5/matches/%s", host, matchID)
	return doRequest[Match](ctx, c, u, "match")
}

func (c *RiotClient) GetMatchTimeline(ctx context.Context, platform, matchID string) (*MatchTimeline, error) {
	host, err := regionalHost(platform)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/lol/match/v5/matches/%s/timeline", host, matchID)
	return doRequest[MatchTimeline](ctx, c, u, "timeline")
}

func doRequest[T any](ctx context.Context, client *RiotClient, url, endpoint string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	if client.apiKey != "" {
		req.Header.Set("X-Riot-Token", client.apiKey)
	}

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			recordRequest(endpoint, "transport_error")
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			recordRequest(endpoint, "transport_error")
			return nil, err
		}
	}

	status := resp.StatusCode()
	recordRequest(endpoint, strconv.Itoa(status))

	if status != fasthttp.StatusOK {
		apiErr := &Error{StatusCode: status, URL: url}
		if status == fasthttp.StatusTooManyRequests {
			if ra := string(resp.Header.Peek("Retry-After")); ra != "" {
				if secs, err := strconv.Atoi(ra); err == nil && secs > 0 {
					apiErr.RetryAfter = time.Duration(secs) * time.Second
				}
			}
		}
		return nil, apiErr
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", endpoint, err)
	}
	return &result, nil
}
