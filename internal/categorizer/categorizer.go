// Package categorizer assigns expense categories by case-insensitive keyword
// matching against an ordered rule table.
//
// Rule order is significant: when keywords of several categories match the
// same description, the category declared first wins.
package categorizer

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"ledgerly/internal/models"
)

// Fixed labels for the non-expense kinds and the fallback.
const (
	CategoryOther  = "Other"
	CategoryIncome = "Income"
	CategoryDebts  = "Debts"
	CategoryLoans  = "Loans"
)

// Rule maps a category to the keywords that trigger it.
type Rule struct {
	Category string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// rulesFile is the structure of a YAML rules file.
type rulesFile struct {
	Categories []Rule `yaml:"categories"`
}

// Categorizer classifies expense descriptions. It holds no mutable state and
// is safe for concurrent use.
type Categorizer struct {
	rules []Rule
}

// New builds a Categorizer from rules, keeping their order. Keywords are
// lower-cased once here so Categorize only lower-cases its input.
func New(rules []Rule) (*Categorizer, error) {
	normalized := make([]Rule, 0, len(rules))
	for i, r := range rules {
		name := strings.TrimSpace(r.Category)
		if name == "" {
			return nil, fmt.Errorf("rule %d: category name is required", i+1)
		}
		keywords := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		if len(keywords) == 0 {
			return nil, fmt.Errorf("rule %q: at least one keyword is required", name)
		}
		normalized = append(normalized, Rule{Category: name, Keywords: keywords})
	}
	return &Categorizer{rules: normalized}, nil
}

// Default returns a Categorizer over the built-in rule table.
func Default() *Categorizer {
	c, err := New(DefaultRules())
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile reads rules from a YAML file of the form
//
//	categories:
//	  - name: Transport
//	    keywords: [taxi, uber]
//
// An empty path yields the default table.
func LoadFile(path string) (*Categorizer, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories file: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse categories file %s: %w", path, err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("categories file %s defines no categories", path)
	}

	return New(file.Categories)
}

// Categorize returns the first category whose keywords occur in description,
// or CategoryOther.
func (c *Categorizer) Categorize(description string) string {
	text := strings.ToLower(description)
	for _, r := range c.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(text, kw) {
				return r.Category
			}
		}
	}
	return CategoryOther
}

// Categories lists the category labels in rule order, followed by CategoryOther.
func (c *Categorizer) Categories() []string {
	names := make([]string, 0, len(c.rules)+1)
	for _, r := range c.rules {
		names = append(names, r.Category)
	}
	return append(names, CategoryOther)
}

// Rules returns a copy of the rule table.
func (c *Categorizer) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	for i, r := range c.rules {
		out[i] = Rule{Category: r.Category, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// CategoryFor returns the stored category label for a transaction: the keyword
// category for expenses and a fixed label for every other kind. Unknown kinds
// get CategoryOther.
func (c *Categorizer) CategoryFor(kind models.TransactionKind, counterparty string) string {
	switch kind {
	case models.TransactionKindExpense:
		return c.Categorize(counterparty)
	case models.TransactionKindIncome:
		return CategoryIncome
	case models.TransactionKindDebtIncurred, models.TransactionKindDebtPayment:
		return CategoryDebts
	case models.TransactionKindLoanGiven, models.TransactionKindLoanCollected:
		return CategoryLoans
	}
	return CategoryOther
}
