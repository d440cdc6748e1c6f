package api

import (
	"fmt"
	"strings"
)

// ProjectKind selects the template pair used by the scaffolder.
type ProjectKind string

const (
	KindOperator   ProjectKind = "operator"
	KindCustomNode ProjectKind = "custom-node"
)

// Language selects the template family. Only Rust templates ship today.
type Language string

const LanguageRust Language = "rust"

// DisplayName is the human-readable form used in confirmation messages.
func (k ProjectKind) DisplayName() string {
	switch k {
	case KindOperator:
		return "operator"
	case KindCustomNode:
		return "custom node"
	default:
		return string(k)
	}
}

// ParseProjectKind maps a command line value onto a ProjectKind.
func ParseProjectKind(s string) (ProjectKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "operator":
		return KindOperator, nil
	case "custom-node", "node":
		return KindCustomNode, nil
	default:
		return "", fmt.Errorf("unknown project kind %q (valid: %s, %s)", s, KindOperator, KindCustomNode)
	}
}

// ParseLanguage maps a command line value onto a Language.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rust":
		return LanguageRust, nil
	default:
		return "", fmt.Errorf("unsupported language %q (valid: %s)", s, LanguageRust)
	}
}

// DisplayName returns the language as users spell it.
func (l Language) DisplayName() string {
	switch l {
	case LanguageRust:
		return "Rust"
	default:
		return string(l)
	}
}
