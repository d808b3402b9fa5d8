package graph

import "github.com/graphql-go/graphql"

// Helpers for pulling typed values out of GraphQL argument maps.

func argMap(p graphql.ResolveParams, key string) map[string]interface{} {
	m, _ := p.Args[key].(map[string]interface{})
	return m
}

func strArg(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func strPtrArg(m map[string]interface{}, key string) *string {
	if s, ok := m[key].(string); ok {
		return &s
	}
	return nil
}

func floatArg(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func floatPtrArg(m map[string]interface{}, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}
