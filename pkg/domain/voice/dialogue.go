package voice

import (
	"fmt"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/parser"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stage is the state of a voice dialogue.
type Stage string

const (
	StageIdle           Stage = "idle"
	StageAskingAmount   Stage = "asking_amount"
	StageAskingType     Stage = "asking_type"
	StageAskingCategory Stage = "asking_category"
	StageAskingGoal     Stage = "asking_goal"
)

// DuplicateWindow is how long an identical utterance is ignored.
const DuplicateWindow = 3 * time.Second

// Prompts spoken back to the user.
const (
	PromptAmount      = "How much was it?"
	PromptValidAmount = "Please say a valid amount."
	PromptType        = "Is this income or an expense?"
	PromptNotCaught   = "Sorry, I didn't catch that. Is it income or expense?"
	PromptCategory    = "Which category does this expense belong to?"
	PromptNoCategory  = "I couldn't find that category. Please say one of your categories."
	PromptGoal        = "Should this go to one of your goals or to your general balance?"
	PromptNoGoal      = "I couldn't find that goal. Say a goal name or general balance."
	PromptCancelled   = "Okay, cancelled."
)

// Descriptions stored on transactions recorded by the dialogue.
const (
	DescriptionDialogue = "Added via voice dialogue"
	DescriptionGeneral  = "Added to general balance via voice"
	DescriptionGoal     = "Added to goal via voice"
)

// Session is the per-user dialogue state kept between utterances.
type Session struct {
	Stage         Stage            `json:"stage"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Type          string           `json:"type,omitempty"`
	DomainID      *uuid.UUID       `json:"domain_id,omitempty"`
	GoalID        *uuid.UUID       `json:"goal_id,omitempty"`
	Language      string           `json:"language"`
	LastUtterance string           `json:"last_utterance,omitempty"`
	LastAt        time.Time        `json:"last_at"`
}

// NewSession returns an idle session.
func NewSession() Session {
	return Session{Stage: StageIdle, Language: parser.LangEnglish}
}

// reset clears the slots but remembers the last utterance.
func (s Session) reset() Session {
	next := NewSession()
	next.Language = s.Language
	next.LastUtterance = s.LastUtterance
	next.LastAt = s.LastAt
	return next
}

// Option is a domain or goal the user can name.
type Option struct {
	ID   uuid.UUID
	Name string
	// Expected and Spent are set for domains with a budget.
	Expected decimal.Decimal
	Spent    decimal.Decimal
}

// Context is what the dialogue needs to know about the user.
type Context struct {
	Now time.Time
	// Language is the user's preferred language; anything but "en" overrides detection.
	Language string
	Domains  []Option
	Goals    []Option
}

// Completion is a transaction ready to be recorded.
type Completion struct {
	Amount      decimal.Decimal
	Type        string
	DomainID    *uuid.UUID
	GoalID      *uuid.UUID
	Description string
}

// Outcome is the result of one dialogue step.
type Outcome struct {
	Prompt    string
	Completed *Completion
	Ignored   bool
}

func names(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Name
	}
	return out
}

// Step advances the dialogue with one utterance. It is pure: recording the
// completed transaction and persisting the session are up to the caller.
func Step(s Session, utterance string, c Context) (Session, Outcome) {
	if s.Stage == "" {
		s = NewSession()
	}
	if utterance == s.LastUtterance && c.Now.Sub(s.LastAt) < DuplicateWindow {
		return s, Outcome{Ignored: true}
	}

	cmd := parser.ParseCommand(utterance)
	lang := s.Language
	if s.Stage == StageIdle {
		lang = cmd.Language
	}
	if c.Language != "" && c.Language != parser.LangEnglish {
		lang = c.Language
	}
	s.Language = lang
	s.LastUtterance = utterance
	s.LastAt = c.Now

	if parser.IsInterrupt(utterance) {
		return s.reset(), Outcome{Prompt: PromptCancelled}
	}

	if s.Amount == nil && cmd.HasAmount {
		amount := cmd.Amount
		s.Amount = &amount
	}
	if s.Type == "" {
		s.Type = cmd.Type
	}
	if s.DomainID == nil {
		if i := parser.MatchName(utterance, names(c.Domains)); i >= 0 {
			id := c.Domains[i].ID
			s.DomainID = &id
		}
	}

	description := DescriptionDialogue
	if s.Stage == StageIdle {
		description = utterance
	}

	if s.Stage == StageAskingGoal {
		if parser.IsGeneralBalance(utterance) {
			return s.complete(nil, nil, DescriptionGeneral, c)
		}
		if i := parser.MatchName(utterance, names(c.Goals)); i >= 0 {
			id := c.Goals[i].ID
			return s.complete(nil, &id, DescriptionGoal, c)
		}
		return s, Outcome{Prompt: PromptNoGoal}
	}

	switch {
	case s.Amount == nil:
		return s.ask(StageAskingAmount, PromptAmount, PromptValidAmount)
	case s.Type == "":
		return s.ask(StageAskingType, PromptType, PromptNotCaught)
	case s.Type == "expense" && s.DomainID == nil:
		return s.ask(StageAskingCategory, PromptCategory, PromptNoCategory)
	case s.Type == "income" && len(c.Goals) > 0:
		return s.ask(StageAskingGoal, PromptGoal, PromptNoGoal)
	}
	return s.complete(s.DomainID, nil, description, c)
}

func (s Session) ask(stage Stage, prompt, reprompt string) (Session, Outcome) {
	if s.Stage == stage {
		return s, Outcome{Prompt: reprompt}
	}
	s.Stage = stage
	return s, Outcome{Prompt: prompt}
}

func (s Session) complete(domainID, goalID *uuid.UUID, description string, c Context) (Session, Outcome) {
	done := &Completion{
		Amount:      *s.Amount,
		Type:        s.Type,
		DomainID:    domainID,
		GoalID:      goalID,
		Description: description,
	}
	return s.reset(), Outcome{Prompt: feedback(done, c.Domains), Completed: done}
}

// feedback reports budget usage for expenses in a budgeted domain.
func feedback(done *Completion, domains []Option) string {
	if done.Type == "expense" && done.DomainID != nil {
		for _, d := range domains {
			if d.ID != *done.DomainID || !d.Expected.IsPositive() {
				continue
			}
			used := d.Spent.Add(done.Amount).Div(d.Expected).Mul(decimal.NewFromInt(100)).Round(0)
			return fmt.Sprintf("Your monthly budget is %s. You have used %s%% of it.", d.Expected.String(), used.String())
		}
	}
	return fmt.Sprintf("Added %s successfully.", done.Amount.String())
}
