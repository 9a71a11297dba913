package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"keeps/internal/coverage"
	"keeps/internal/dto"
	"keeps/internal/repository"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxChatMessageChars = 4000
	maxContextFindings  = 10
)

const chatSystemPrompt = `You are an insurance coverage assistant. You help users understand their insurance portfolio.
Use ONLY the portfolio data below to answer.

RESPONSE STYLE:
- Be concise: 2-6 bullet points for overview questions.
- Format dollar amounts as $1,200. Amounts in the data are whole dollars.
- Give full policy details only when asked about a specific policy.

RULES:
- Cite exact figures from the data.
- For "am I covered?" questions, check details and exclusions. If uncertain, say so and recommend calling the carrier, with the claims number when one is listed.
- You are not a licensed agent. For coverage changes, recommend their agent or broker.
- If something is not in the data, say you do not have that information.
- Today's date: %s

%s`

type ChatService struct {
	policies PolicyStore
	profiles *ProfileService
	llm      TextGenerator
	logger   *zap.Logger
	now      func() time.Time
}

func NewChatService(policies PolicyStore, profiles *ProfileService, llm TextGenerator, logger *zap.Logger) *ChatService {
	return &ChatService{
		policies: policies,
		profiles: profiles,
		llm:      llm,
		logger:   logger,
		now:      time.Now,
	}
}

// Ask answers a question about the caller's portfolio.
func (s *ChatService) Ask(ctx context.Context, userID uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message cannot be empty", ErrInvalidInput)
	}
	message = truncateRunes(message, maxChatMessageChars)

	policies, err := s.policies.List(ctx, userID, repository.PolicyFilter{})
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	uc, err := s.profiles.UserContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	cps := coveragePolicies(policies)
	findings := coverage.AnalyzeGapsAt(cps, uc, now)
	block := BuildCoverageContext(cps, coverage.SummarizeCoverage(cps), findings)

	reply, err := s.llm.Generate(ctx, fmt.Sprintf(chatSystemPrompt, now.Format(dateLayout), block), message)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	s.logger.Info("Chat answered",
		zap.String("user_id", userID.String()),
		zap.Int("policies", len(cps)),
		zap.Int("context_length", len(block)),
	)
	return &dto.ChatResponse{Reply: reply}, nil
}

// BuildCoverageContext renders the portfolio, its summary and the high and
// medium findings as a plain-text block for the assistant's system prompt.
// The output depends only on its arguments.
func BuildCoverageContext(policies []coverage.Policy, summary coverage.Summary, findings []coverage.Finding) string {
	var b strings.Builder

	b.WriteString("## INSURANCE POLICIES\n")
	if len(policies) == 0 {
		b.WriteString("No policies on file.\n")
	}
	for _, p := range policies {
		writePolicyBlock(&b, p)
	}

	if len(policies) > 0 {
		b.WriteString("\n## COVERAGE SUMMARY\n")
		fmt.Fprintf(&b, "- Total policies: %d\n", summary.TotalPolicies)
		fmt.Fprintf(&b, "- Policy types: %s\n", strings.Join(summary.PolicyTypes, ", "))
		fmt.Fprintf(&b, "- Total coverage: %s\n", money(summary.TotalCoverage))
		fmt.Fprintf(&b, "- Total annual premium: %s\n", money(summary.TotalAnnualPremium))
		if len(summary.CoveredCategories) > 0 {
			fmt.Fprintf(&b, "- Covered categories: %s\n", strings.Join(summary.CoveredCategories, ", "))
		}
		if len(summary.MissingCategories) > 0 {
			fmt.Fprintf(&b, "- Missing categories: %s\n", strings.Join(summary.MissingCategories, ", "))
		}
	}

	written := 0
	for _, f := range findings {
		if f.Severity != coverage.SeverityHigh && f.Severity != coverage.SeverityMedium {
			continue
		}
		if written == maxContextFindings {
			break
		}
		if written == 0 {
			b.WriteString("\n## COVERAGE GAPS\n")
		}
		fmt.Fprintf(&b, "- [%s] %s: %s\n", strings.ToUpper(string(f.Severity)), f.Name, f.Description)
		if f.Recommendation != "" {
			fmt.Fprintf(&b, "  Recommendation: %s\n", f.Recommendation)
		}
		written++
	}

	return b.String()
}

func writePolicyBlock(b *strings.Builder, p coverage.Policy) {
	fmt.Fprintf(b, "### %s %s\n", p.Carrier, p.PolicyType)
	fmt.Fprintf(b, "- Type: %s\n", p.PolicyType)
	fmt.Fprintf(b, "- Coverage limit: %s\n", optionalMoney(p.CoverageAmount))
	fmt.Fprintf(b, "- Premium: %s\n", optionalMoney(p.PremiumAmount))
	if p.RenewalDate != "" {
		fmt.Fprintf(b, "- Renewal date: %s\n", p.RenewalDate)
	}
	if len(p.Contacts) > 0 {
		b.WriteString("- Contacts:\n")
		for _, c := range p.Contacts {
			if c.Phone != "" {
				fmt.Fprintf(b, "  - %s | Phone: %s\n", c.Role, c.Phone)
			} else {
				fmt.Fprintf(b, "  - %s\n", c.Role)
			}
		}
	}
	if len(p.Details) > 0 {
		b.WriteString("- Details:\n")
		for _, d := range p.Details {
			fmt.Fprintf(b, "  - %s: %s\n", d.FieldName, d.FieldValue)
		}
	}
}

func money(amount int64) string {
	return "$" + humanize.Comma(amount)
}

func optionalMoney(amount *int64) string {
	if amount == nil {
		return "N/A"
	}
	return money(*amount)
}
