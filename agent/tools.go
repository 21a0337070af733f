package agent

import (
	"context"
	"fmt"

	"github.com/etnz/planilla"
	"github.com/etnz/planilla/date"
	"github.com/etnz/planilla/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Func is a Function made of a declaration and a callback.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

var periodSchema = &genai.Schema{
	Type:        genai.TypeInteger,
	Description: "The period number, 1 being the first certificate. The last period is used when omitted or out of range.",
}

var markdownSchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: "A markdown document in Spanish.",
}

// markdownTool declares a function returning the markdown render of the report.
func markdownTool(name, description string, withPeriod bool, render func(period int) string) *Func {
	decl := &genai.FunctionDeclaration{
		Name:        name,
		Description: description,
		Response:    markdownSchema,
	}
	if withPeriod {
		decl.Parameters = &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{"period": periodSchema},
		}
	}
	return &Func{
		Decl: decl,
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			period, err := parsePeriod(args)
			if err != nil {
				return errorResponse(id, name, err)
			}
			return outputResponse(id, name, render(period))
		},
	}
}

// ReportTools are the functions reading r. Milestones are evaluated at today.
func ReportTools(r *planilla.Report, milestones []planilla.Milestone, today date.Date) []*Func {
	return []*Func{
		markdownTool("Ledger",
			"Ledger of every period: executed, planned and paid amounts, physical and financial progress, SPI and CPI.",
			false, func(int) string { return renderer.LedgerMarkdown(r) }),
		markdownTool("Cut",
			"Key figures of the contract at the close of a period: paid amounts, balance, indices and alerts.",
			true, func(p int) string { return renderer.CutMarkdown(r, p) }),
		markdownTool("Certificate",
			"Payment certificate of a period: executed items, advance amortization, penalty and liquid payable.",
			true, func(p int) string { return renderer.CertificateMarkdown(r, p) }),
		markdownTool("Modules",
			"Budget, executed amount, incidence and progress of every module of the work.",
			false, func(int) string { return renderer.ModulesMarkdown(r) }),
		markdownTool("Contract",
			"Technical sheet of the contract: parties, amounts, durations and modifications.",
			false, func(int) string { return renderer.ContractMarkdown(r.Config) }),
		markdownTool("Milestones",
			"Contractual financial milestones with their due date and state today.",
			false, func(int) string {
				statuses := planilla.MilestoneStatuses(r.Config, milestones, today)
				return renderer.MilestonesMarkdown(statuses, r.Config.DaysElapsed(today))
			}),
	}
}

// parsePeriod reads the optional period argument, 0 when absent.
func parsePeriod(args map[string]any) (int, error) {
	v, ok := args["period"]
	if !ok {
		return 0, nil
	}
	// JSON numbers are decoded as float64.
	switch p := v.(type) {
	case float64:
		return int(p), nil
	case int:
		return p, nil
	}
	return 0, fmt.Errorf("argument 'period' is not a number as expected but %T", v)
}

// NewSupervisor returns the expert reading the contract report.
func NewSupervisor(tools []*Func) *Expert {
	return &Expert{
		Name: "Supervisor",
		Description: `This is the works Supervisor. He reads the ledger of the construction contract:
		certificates, physical and financial progress, modules, modifications, penalties and milestones.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(tools)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the supervisor of a fixed-price public works contract.
				Use the Tools to read the ledger, the certificates and the contract before answering.
				Quote the figures as they appear in the documents, with their currency.
				An SPI below 1 means the work is behind schedule.
			`}}},
		},
		Library: NewLibrary(tools),
	}
}

// newFacilitator returns the expert in charge of the conversation.
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
			They keep context of your previous questions.

			The user follows a construction contract. Answer in the language of the user,
			with short markdown.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}
