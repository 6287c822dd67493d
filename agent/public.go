package agent

import (
	"context"
	"fmt"

	"github.com/etnz/dcf"
	"github.com/etnz/dcf/date"
	"github.com/etnz/dcf/docs"
	"github.com/etnz/dcf/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to understand what a company is worth. Typical requests are a valuation
			of a ticker, a challenge of its assumptions, or context about the company's business.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			When the user names a company without a ticker, ask the Analyst to find the EODHD ticker first.
			When the user disputes a figure, rerun the valuation with the assumption he disputes changed and
			show both fair values side by side.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst is an expert grounding answers in a web search.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an equity analyst,
		very well aware of public companies, their tickers, their business and their latest filings.
		Ask the Analyst whenever you need recent or grounding information: news, tickers, betas,
		consensus growth expectations.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an equity analyst. You can search and find about anything related to
			public companies, markets, filings and financial news. You leverage Google Search to
			ground your assertions in a solid truth.
			When asked for a ticker, answer in the EODHD format CODE.EXCHANGE, like AAPL.US.
				`}}},
		},
	}
}

// NewValuator is the expert running discounted cash flow valuations through
// the given providers.
func NewValuator(market dcf.MarketDataProvider, rates dcf.RateProvider) *Expert {

	lib := []Function{runValuationFunc(market, rates), financialsFunc(market), riskFreeFunc(rates)}

	return &Expert{
		Name: "Valuator",
		Description: `This is the Valuator. He runs discounted cash flow valuations on real market data
		and can show the underlying financial statements and the current risk-free rate.
		Ask him for a fair value per share, for a valuation under different assumptions, or for the
		raw cash flows behind one.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a valuation expert. You use the available tools to run discounted cash flow
				valuations on real market data, and you explain the resulting figures to the team.
				Tickers are in the EODHD format CODE.EXCHANGE, like AAPL.US.

				Below is the methodology your tools implement.

				` + must(docs.GetTopic("dcf"))}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func runValuationFunc(market dcf.MarketDataProvider, rates dcf.RateProvider) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "RunValuation",
			Description: `RunValuation runs a complete discounted cash flow valuation of one company
			and returns the full report: capital structure, cost of capital, projected cash flows,
			fair value per share and its sensitivity to the discount and terminal growth rates.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ticker": {
						Type:        genai.TypeString,
						Description: "The EODHD ticker, CODE.EXCHANGE like AAPL.US.",
					},
					"years": {
						Type:        genai.TypeNumber,
						Description: "Forecast horizon in years, 5 to 15. 10 by default.",
					},
					"growth": {
						Type:        genai.TypeNumber,
						Description: "Yearly FCFF growth as a fraction, 0 to 0.30. 0.14 by default.",
					},
					"terminal_growth": {
						Type:        genai.TypeNumber,
						Description: "Perpetual growth beyond the horizon as a fraction, 0 to 0.10, below the WACC. 0.05 by default.",
					},
					"beta": {
						Type:        genai.TypeNumber,
						Description: "The CAPM beta of the company. 1.0 by default.",
					},
					"market_return": {
						Type:        genai.TypeNumber,
						Description: "Expected market return as a fraction. 0.09 by default.",
					},
				},
				Required: []string{"ticker"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown valuation report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "RunValuation", Response: map[string]any{}}

			ticker, ok := args["ticker"].(string)
			if !ok {
				fresp.Response["error"] = fmt.Sprintf("argument 'ticker' is not a string as expected but %T", args["ticker"])
				return fresp
			}
			a, err := parseAssumptions(args)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}

			report, err := dcf.Run(ticker, a, market, rates)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			fresp.Response["output"] = renderer.ReportMarkdown(report)
			return fresp
		},
	}
}

func financialsFunc(market dcf.MarketDataProvider) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Financials",
			Description: `Financials returns the yearly financial statements of one company as fetched:
			operating cash flow, capital expenditure, interest expense, debt and cash, in billions.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ticker": {
						Type:        genai.TypeString,
						Description: "The EODHD ticker, CODE.EXCHANGE like AAPL.US.",
					},
				},
				Required: []string{"ticker"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "Markdown tables of the yearly statements, most recent first.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "Financials", Response: map[string]any{}}

			ticker, ok := args["ticker"].(string)
			if !ok {
				fresp.Response["error"] = fmt.Sprintf("argument 'ticker' is not a string as expected but %T", args["ticker"])
				return fresp
			}
			stmts, err := market.Financials(ticker)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			fresp.Response["output"] = renderer.FinancialsMarkdown(ticker, stmts)
			return fresp
		},
	}
}

func riskFreeFunc(rates dcf.RateProvider) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "RiskFreeRate",
			Description: `RiskFreeRate returns the current risk-free rate, the 10-year treasury yield.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The rate, like \"4.33%\".",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "RiskFreeRate", Response: map[string]any{}}

			rate, err := rates.RiskFreeRate(date.Today())
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			fresp.Response["output"] = dcf.Percent(100 * rate).String()
			return fresp
		},
	}
}

// parseAssumptions reads the optional assumption arguments on top of the
// defaults. Numbers arrive as float64 from the model.
func parseAssumptions(args map[string]any) (dcf.AssumptionSet, error) {
	a := dcf.DefaultAssumptions()
	read := func(key string) (float64, bool, error) {
		raw, ok := args[key]
		if !ok {
			return 0, false, nil
		}
		v, ok := raw.(float64)
		if !ok {
			return 0, false, fmt.Errorf("argument %q is not a number as expected but %T", key, raw)
		}
		return v, true, nil
	}

	if v, ok, err := read("years"); err != nil {
		return a, err
	} else if ok {
		a.ForecastYears = int(v)
	}
	if v, ok, err := read("growth"); err != nil {
		return a, err
	} else if ok {
		a.FCFFGrowth = v
	}
	if v, ok, err := read("terminal_growth"); err != nil {
		return a, err
	} else if ok {
		a.TerminalGrowth = v
	}
	if v, ok, err := read("beta"); err != nil {
		return a, err
	} else if ok {
		a.Beta = v
	}
	if v, ok, err := read("market_return"); err != nil {
		return a, err
	} else if ok {
		a.MarketReturn = v
	}
	return a, a.Validate()
}
