// Package library searches and groups the documents of the condominium.
package library

import (
	"strings"

	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
)

// Filter returns the documents whose name, category or description contains `term`, ignoring case.
// A blank term keeps every document.
func Filter(docs []gateway.Document, term string) []gateway.Document {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return docs
	}
	var matched []gateway.Document
	for _, d := range docs {
		if matches(d, term) {
			matched = append(matched, d)
		}
	}
	return matched
}

func matches(d gateway.Document, term string) bool {
	for _, field := range []string{d.Name, d.Category, d.Description} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

type Group struct {
	Category  string
	Documents []gateway.Document
}

// GroupByCategory groups documents by category in order of first appearance.
// Documents without a category go to `uncategorized`.
func GroupByCategory(docs []gateway.Document, uncategorized string) []Group {
	var groups []Group
	index := map[string]int{}
	for _, d := range docs {
		category := d.Category
		if strings.TrimSpace(category) == "" {
			category = uncategorized
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, Group{Category: category})
		}
		groups[i].Documents = append(groups[i].Documents, d)
	}
	return groups
}
