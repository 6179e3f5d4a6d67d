package agent

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	fantasy "github.com/jgrizzled/fantasy-portfolio-analysis"
	"github.com/jgrizzled/fantasy-portfolio-analysis/docs"
	"github.com/jgrizzled/fantasy-portfolio-analysis/renderer"
)

const model = "gemini-2.5-pro"

// newFacilitator builds the expert that owns the conversation and
// delegates to the others through function calls.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You facilitate a fantasy stock-picking league. The user is a player or
			the commissioner, asking about the standings, the teams, their playbooks,
			or the market behind the tickers the teams hold.

			The experts declared in your tools are at your service and keep the
			context of your previous questions. Ask the Analyst first, it holds the
			league and its replayed season, so you know the actual teams, tickers and
			scores before answering. Ask the Scout when the question needs market
			news or facts about the companies and funds behind the tickers.

			Answer plainly and in markdown. Never invent a team, ticker or score
			that the Analyst did not report. You read the league, you never change
			it. When the user asks for a playbook change, explain what to edit in
			the league file instead.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewScout builds the search-grounded expert for market context.
func NewScout() *Expert {
	return &Expert{
		Name: "Scout",
		Description: `The Scout watches the market. It searches the web for recent news
		and facts about companies, funds and indices, and relates them to a ticker's
		moves. Ask the Scout whenever a question needs information from outside the
		league.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a market scout for a fantasy stock-picking league. You use Google
			Search to ground everything you report: company news, fund compositions,
			index moves, anything behind a ticker symbol. Report what you found, when
			it happened, and keep it tied to the question asked.
		`}}},
		},
	}
}

// QuoteFunc returns the latest market price for a ticker.
type QuoteFunc func(ctx context.Context, ticker string) (float64, error)

// NewAnalyst builds the expert that holds the league. Every answer comes
// from the replayed season passed in, the analyst never refetches closes.
// A nil quote leaves the analyst without live prices.
func NewAnalyst(l *fantasy.League, results []*fantasy.Result, stats []fantasy.Stats, standings *fantasy.Standings, quote QuoteFunc) *Expert {
	lib := leagueTools(l, results, stats, standings)
	if quote != nil {
		lib = append(lib, quoteTool(quote))
	}

	return &Expert{
		Name: "Analyst",
		Description: `The Analyst holds the league: the league file with every team's
		playbook, the replayed season, the scoreboard and each team's trades and
		final book. Ask the Analyst anything about teams, scores, allocations or
		what actually happened during the season.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are the analyst of a fantasy stock-picking league. Your tools read
			the league file, the season report, the scoreboard and each team's
			trades. Use them, never answer about the league from memory alone.

			Other experts may relay user questions in approximate language, figure
			out which team or ticker they mean.

			The scoring rules of the league:

		` + must(docs.GetTopic("scoring"))}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements Function with plain values, handy for closures.
type Func struct {
	Decl *genai.FunctionDeclaration
	Fn   func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Fn(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// leagueTools builds the analyst's function library over an already
// replayed season.
func leagueTools(l *fantasy.League, results []*fantasy.Result, stats []fantasy.Stats, standings *fantasy.Standings) []Function {
	stringResponse := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc}
	}

	leagueFile := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "LeagueFile",
			Description: `LeagueFile returns the league configuration as YAML: the season
			range, the purse, and every team with its dated playbook of target weights.`,
			Response: stringResponse("The league file, as YAML."),
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var buf bytes.Buffer
			if err := fantasy.EncodeLeague(&buf, l); err != nil {
				return toolError(id, "LeagueFile", err)
			}
			return toolOutput(id, "LeagueFile", buf.String())
		},
	}

	report := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "SeasonReport",
			Description: `SeasonReport returns the full season analysis: final value, total
			return, max drawdown, Sharpe ratio and rebalance count per team, the
			scoreboard, and each team's final cash and holdings.`,
			Response: stringResponse("A markdown report of the replayed season."),
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return toolOutput(id, "SeasonReport", renderer.AnalysisMarkdown(l, results, stats, standings))
		},
	}

	scoreboard := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Standings",
			Description: `Standings returns the scoreboard and the month-by-month award
			table: who took best return and best drawdown each completed month.`,
			Response: stringResponse("A markdown scoreboard with monthly awards."),
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return toolOutput(id, "Standings", renderer.StandingsMarkdown(l, standings))
		},
	}

	teamTrades := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "TeamTrades",
			Description: `TeamTrades returns every fill one team made over the season:
			date, ticker, signed share count, price and cost.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"team": {
						Type:        genai.TypeString,
						Description: "The team name, as in the league file.",
					},
				},
				Required: []string{"team"},
			},
			Response: stringResponse("A markdown table of the team's trades."),
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			name, ok := args["team"].(string)
			if !ok {
				return toolError(id, "TeamTrades", fmt.Errorf("invalid team type %T, expected string", args["team"]))
			}
			for _, r := range results {
				if strings.EqualFold(r.Team().Name(), name) {
					return toolOutput(id, "TeamTrades", renderer.TradesMarkdown(r, 0))
				}
			}
			known := make([]string, 0, len(results))
			for _, r := range results {
				known = append(known, r.Team().Name())
			}
			return toolError(id, "TeamTrades", fmt.Errorf("no team %q in this league, teams are: %s", name, strings.Join(known, ", ")))
		},
	}

	return []Function{leagueFile, report, scoreboard, teamTrades}
}

// quoteTool wraps a live quote source as a callable tool.
func quoteTool(quote QuoteFunc) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "LatestQuote",
			Description: `LatestQuote returns the latest market price for one ticker. It is
			live data, not part of the replayed season.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ticker": {
						Type:        genai.TypeString,
						Description: "The ticker symbol, e.g. SPY.",
					},
				},
				Required: []string{"ticker"},
			},
			Response: &genai.Schema{Type: genai.TypeString, Description: "The latest price."},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ticker, ok := args["ticker"].(string)
			if !ok {
				return toolError(id, "LatestQuote", fmt.Errorf("invalid ticker type %T, expected string", args["ticker"]))
			}
			price, err := quote(ctx, ticker)
			if err != nil {
				return toolError(id, "LatestQuote", err)
			}
			return toolOutput(id, "LatestQuote", fmt.Sprintf("%s last traded at %.2f", strings.ToUpper(ticker), price))
		},
	}
}
