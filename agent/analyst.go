package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/wicaksana/mkbd"
	"github.com/wicaksana/mkbd/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a compliance officer of an Indonesian securities broker. He is here
			primarily to understand the firm's MKBD position: the adjusted net working capital,
			the concentration charges, and whether the filing shows a surplus or a deficit.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewRegulator creates the search-grounded expert on capital regulation.
func NewRegulator() *Expert {
	return &Expert{
		Name: "Regulator",
		Description: `This is an expert on Indonesian capital market regulation,
		well aware of the OJK rules on net adjusted working capital (MKBD),
		reporting obligations and recent regulatory news.
		Ask the Regulator whenever you need grounding information about the rules.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in Indonesian capital market regulation. You can search and
			find anything related to OJK rules, MKBD requirements, reporting deadlines and
			sanctions. You leverage Google Search to ground your assertions.
				`}}},
		},
	}
}

// NewAnalyst creates the expert in charge of the user's MKBD filing. Its
// tools read the filing file and run the calculation.
func NewAnalyst(filingFile string) *Expert {
	lib := []Function{calculationFunc(filingFile), rankingFunc(filingFile)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's MKBD filing.
		He can run the full calculation and detail the concentration charges per issuer group.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's MKBD filing.
				Use the available tools to compute the adjusted net working capital
				and to detail the concentration charges. Explain the figures in the
				tools' output, do not invent numbers.
			`}}},
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

func calculationFunc(filingFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Calculation",
			Description: `Calculation runs the full MKBD computation over the user's filing
			and returns every step: base quantities, ranking liabilities, working capital,
			adjusted MKBD, required MKBD and the surplus or deficit.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted calculation report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			r, err := calculateFiling(filingFile)
			if err != nil {
				return errorResponse(id, "Calculation", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Calculation",
				Response: map[string]any{
					"output": renderer.ResultMarkdown(r),
				},
			}
		},
	}
}

func rankingFunc(filingFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Ranking",
			Description: `Ranking details the concentration charges: one line per ranked
			instrument with its market value, the share of equity it represents, the 20%
			threshold and the resulting charge.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the ranked instruments.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			r, err := calculateFiling(filingFile)
			if err != nil {
				return errorResponse(id, "Ranking", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Ranking",
				Response: map[string]any{
					"output": renderer.RankingTable(r.Ranking),
				},
			}
		},
	}
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func calculateFiling(filingFile string) (*mkbd.Result, error) {
	f, err := os.Open(filingFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return mkbd.Calculate(nil, nil), nil
		}
		return nil, fmt.Errorf("could not open filing file %q: %w", filingFile, err)
	}
	defer f.Close()

	tables, err := mkbd.DecodeTables(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode filing file %q: %w", filingFile, err)
	}
	return mkbd.Calculate(tables, nil), nil
}
