package javascript

import "sync"

// knownGrammar holds the grammar names the converter expects to see on most
// nodes, interned ahead of time for a fast path
var knownGrammar = map[string]string{
	"program":                        "program",
	"variable_declaration":           "variable_declaration",
	"lexical_declaration":            "lexical_declaration",
	"variable_declarator":            "variable_declarator",
	"function_declaration":           "function_declaration",
	"generator_function_declaration": "generator_function_declaration",
	"function_expression":            "function_expression",
	"generator_function":             "generator_function",
	"arrow_function":                 "arrow_function",
	"class_declaration":              "class_declaration",
	"method_definition":              "method_definition",

	"statement_block":      "statement_block",
	"expression_statement": "expression_statement",
	"if_statement":         "if_statement",
	"switch_statement":     "switch_statement",
	"for_statement":        "for_statement",
	"for_in_statement":     "for_in_statement",
	"while_statement":      "while_statement",
	"do_statement":         "do_statement",
	"try_statement":        "try_statement",
	"throw_statement":      "throw_statement",
	"return_statement":     "return_statement",
	"break_statement":      "break_statement",
	"continue_statement":   "continue_statement",
	"labeled_statement":    "labeled_statement",
	"empty_statement":      "empty_statement",
	"import_statement":     "import_statement",
	"export_statement":     "export_statement",

	"call_expression":                 "call_expression",
	"new_expression":                  "new_expression",
	"assignment_expression":           "assignment_expression",
	"augmented_assignment_expression": "augmented_assignment_expression",
	"binary_expression":               "binary_expression",
	"unary_expression":                "unary_expression",
	"update_expression":               "update_expression",
	"ternary_expression":              "ternary_expression",
	"member_expression":               "member_expression",
	"subscript_expression":            "subscript_expression",
	"parenthesized_expression":        "parenthesized_expression",

	"array":                         "array",
	"object":                        "object",
	"pair":                          "pair",
	"identifier":                    "identifier",
	"property_identifier":           "property_identifier",
	"shorthand_property_identifier": "shorthand_property_identifier",
	"string":                        "string",
	"string_fragment":               "string_fragment",
	"template_string":               "template_string",
	"number":                        "number",
	"regex":                         "regex",
	"arguments":                     "arguments",
	"formal_parameters":             "formal_parameters",
	"class_body":                    "class_body",
	"true":                          "true",
	"false":                         "false",
	"null":                          "null",
}

// internPool provides fallback interning for grammar names outside the
// known set
var internPool sync.Map

// intern returns a canonical instance of the string to reduce memory usage.
// Grammar names repeat on every node of the same construct, so sharing one
// backing string per name keeps large trees cheap. Known names take the
// static fast path; anything else goes through the pool.
func intern(s string) string {
	if canonical, ok := knownGrammar[s]; ok {
		return canonical
	}

	if canonical, ok := internPool.Load(s); ok {
		return canonical.(string)
	}

	actual, _ := internPool.LoadOrStore(s, s)
	return actual.(string)
}
