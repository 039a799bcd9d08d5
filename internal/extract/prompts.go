package extract

import (
	"fmt"
	"strings"

	"github.com/campusdesk/meritbot/internal/merit"
)

const oraclePromptTemplate = `From the question, pull:
- university (one of: %s)
- campus (string; "" if none; support multi-campus via comma or 'and')
- department (canonical to: %s)
- program (canonical to: %s, default "BS")
- year (int, default current year; 'last year' = current year-1)

Return ONLY JSON with keys: university, campus, department, program, year.
User said:
"""%s"""`

func buildOraclePrompt(index *merit.Index, message string) string {
	return fmt.Sprintf(oraclePromptTemplate,
		strings.Join(index.Universities, ", "),
		strings.Join(index.Departments, ", "),
		strings.Join(index.Programs, ", "),
		message,
	)
}
