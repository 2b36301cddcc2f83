package sparql

import "regexp"

// https://stackoverflow.com/questions/29601839/standard-regex-to-prevent-sparql-injection/55726984#55726984
var literalMetacharacters = regexp.MustCompile(`(["'\\])`)

// Escape neutralizes every character that could terminate a quoted string
// literal in a generated query by prefixing it with a backslash. Newlines
// are left as-is; the builder only embeds escaped input in triple-quoted
// literals, which tolerate them.
func Escape(input string) string {
	return literalMetacharacters.ReplaceAllString(input, `\$1`)
}
