package lexer

import "strings"

// phraseNode is one node of the trie keyed on lowercased word sequences.
// Keyword recognition is case-insensitive; the trie is built once at
// package init from phraseTable and walked greedily (longest match wins)
// by the lexer's phrase-folding sweep.
type phraseNode struct {
	children map[string]*phraseNode
	tokType  TokenType
	isEnd    bool
}

func newPhraseNode() *phraseNode {
	return &phraseNode{children: make(map[string]*phraseNode)}
}

// phraseTable lists every recognized keyword phrase, longest-spelling
// synonyms included. Single-word entries are still routed through the trie
// so that identifier-vs-keyword resolution is uniform.
var phraseTable = map[string]TokenType{
	"there is a":    THERE_IS,
	"there is an":   THERE_IS,
	"called":        CALLED,
	"which is":      WHICH_IS,
	"which has":     WHICH_IS,
	"set":           SET,
	"change":        CHANGE,
	"now":           NOW,
	"make":          MAKE,
	"let":           LET,
	"to":            TO,
	"be":            BE,
	"equal to":      EQUAL,
	"add":           ADD,
	"subtract":      SUBTRACT,
	"multiply":      MULTIPLY,
	"divide":        DIVIDE,
	"increase":      INCREASE,
	"decrease":      DECREASE,
	"by":            BY,
	"if":            IF,
	"otherwise":     OTHERWISE,
	"otherwise if":  OTHERWISE_IF,
	"then":          THEN,
	"while":         WHILE,
	"for":           FOR,
	"for each":      FOR,
	"each":          EACH,
	"from":          FROM,
	"down to":       DOWN_TO,
	"in":            IN,
	"the list":      THE_LIST,
	"repeat":        REPEAT,
	"times":         TIMES, // both "N times" (loop) and the multiplicative operator
	"stop the loop": BREAK,
	"skip to the next one": CONTINUE,
	"return":               RETURN,
	"give back":            RETURN,
	"end":                  ENDKW,
	"do":                   DO,
	"define a":             DEFINE,
	"as having":            HAVING,
	"as":                   AS,
	"with":                 WITH,
	"and return a":         AND_RET,
	"to do the main thing": MAIN_INTR,
	"include":              INCLUDE,
	"say":                      SAY,
	"print":                    SAY,
	"show":                     SAY,
	"display":                  SAY,
	"ask the user for":         ASK,
	"a number":                 A_NUMBER,
	"text":                     TEXT,
	"and store it in":          STORE_IT,
	"and then":                 AND_THEN,
	"followed by":              FOLLOWED_BY,
	"plus":                     PLUS,
	"minus":                    MINUS,
	"divided by":                DIVIDED_BY,
	"modulo":                    MODULO,
	"to the power of":           POWER,
	"negative":                  NEGATIVE,
	"not":                       NOT,
	"and":                       AND,
	"or":                        OR,
	"equals":                    EQUALS,
	"is greater than":           GREATER,
	"is less than":              LESS,
	"is at least":               AT_LEAST,
	"is at most":                AT_MOST,
	"is not equal to":           NOT_EQUAL,
	"is between":                BETWEEN,
	"the square root of":        SQRT,
	"the absolute value of":     ABS,
	"the address of":            ADDR_OF,
	"the value at":              VALUE_AT,
	"item number":                ITEM_NUMBER,
	"the first item in":          FIRST_ITEM,
	"the last item in":           LAST_ITEM,
	"the length of":              LENGTH_OF,
	"the value of":               THE_VALUE_OF,
	"the result of":              THE_RESULT_OF,
	"yes":                        YES,
	"no":                         NO,
	"null":                       NULLKW,
	"allocate space for":         ALLOCATE,
	"and call it":                CALL_IT,
	"free the memory at":         FREE,
	"open the file":              OPEN_FILE,
	"close the file":              CLOSE_FILE,
	"read a line from":            READ_LINE,
	"draw":                        DRAW,
	"is":                          IS,
}

var keywordTrie = buildTrie(phraseTable)

func buildTrie(table map[string]TokenType) *phraseNode {
	root := newPhraseNode()
	for phrase, tt := range table {
		words := strings.Fields(phrase)
		node := root
		for _, w := range words {
			w = strings.ToLower(w)
			next, ok := node.children[w]
			if !ok {
				next = newPhraseNode()
				node.children[w] = next
			}
			node = next
		}
		node.isEnd = true
		node.tokType = tt
	}
	return root
}

// lookupSingleWord reports whether a single lowercased word is, on its own,
// a recognized keyword (used when phrase folding finds no multi-word
// match and must decide between IDENT and a one-word keyword).
func lookupSingleWord(word string) (TokenType, bool) {
	node, ok := keywordTrie.children[strings.ToLower(word)]
	if ok && node.isEnd {
		return node.tokType, true
	}
	return ILLEGAL, false
}
