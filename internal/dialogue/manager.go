// Package dialogue runs the per-turn pipeline: extraction, normalization,
// slot merging with prior turns, and either a clarifying question or a
// resolved answer.
package dialogue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/campusdesk/meritbot/internal/events"
	"github.com/campusdesk/meritbot/internal/extract"
	"github.com/campusdesk/meritbot/internal/merit"
	"github.com/campusdesk/meritbot/internal/normalize"
	"github.com/campusdesk/meritbot/internal/resolve"
	"github.com/campusdesk/meritbot/internal/session"
)

// The oracle is the only networked step in a turn, so it alone gets a
// deadline.
const oracleTimeout = 15 * time.Second

const policyReply = "Policy question detected.\n" +
	"Typically, universities issue 2-3 merit lists and may extend if seats remain vacant. " +
	"For a specific campus, ask e.g. 'Vacant-seats policy at FAST Islamabad'."

// Manager drives one conversation turn per call. All fields except sessions
// are read-only after construction; sessions is keyed per conversation, so
// concurrent turns for different sessions never interfere.
type Manager struct {
	index      *merit.Index
	normalizer *normalize.Normalizer
	extractor  *extract.Extractor
	oracle     *extract.Oracle
	resolver   *resolve.Resolver
	sessions   session.Store
	bus        *events.Client
	logger     *slog.Logger
}

// NewManager wires the turn pipeline. oracle and bus may be nil.
func NewManager(
	index *merit.Index,
	normalizer *normalize.Normalizer,
	extractor *extract.Extractor,
	oracle *extract.Oracle,
	resolver *resolve.Resolver,
	sessions session.Store,
	bus *events.Client,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		index:      index,
		normalizer: normalizer,
		extractor:  extractor,
		oracle:     oracle,
		resolver:   resolver,
		sessions:   sessions,
		bus:        bus,
		logger:     logger,
	}
}

// Respond produces the reply for one inbound message. Every input, however
// malformed, ends in a non-empty reply.
func (m *Manager) Respond(ctx context.Context, sessionID, message string) string {
	// Policy questions short-circuit before any state handling and leave the
	// stored conversation untouched.
	if extract.IsPolicyQuestion(message) {
		return policyReply
	}

	prior, hasPrior := m.sessions.Get(sessionID)

	var slots extract.Slots
	if m.oracle != nil {
		octx, cancel := context.WithTimeout(ctx, oracleTimeout)
		if got, ok := m.oracle.Extract(octx, message); ok {
			slots = got
		}
		cancel()
	}
	if !slots.Complete() {
		slots = slots.Merge(m.extractor.Cheap(message))
	}

	university := m.normalizer.University(slots.University)
	department := m.normalizer.Department(slots.Department)
	program := m.normalizer.Program(slots.Program)
	campus := m.normalizer.Campus(slots.Campus)
	year := slots.Year

	if hasPrior {
		// The whole message answers the slot we asked for, overriding any
		// extractor guess for that slot, but only when it actually lands on
		// the vocabulary.
		switch prior.Awaiting {
		case session.SlotUniversity:
			if v, ok := m.normalizer.MatchUniversity(message); ok {
				university = v
			}
		case session.SlotDepartment:
			if v, ok := m.normalizer.MatchDepartment(message); ok {
				department = v
			}
		case session.SlotProgram:
			if v, ok := m.normalizer.MatchProgram(message); ok {
				program = v
			}
		}
		// Earlier turns fill the gaps; values present in this turn win.
		if university == "" {
			university = prior.University
		}
		if department == "" {
			department = prior.Department
		}
		if program == "" {
			program = prior.Program
		}
		if campus == "" {
			campus = prior.Campus
		}
		if year == 0 {
			year = prior.Year
		}
	}

	if university != "" && department != "" {
		department = m.resolver.AdjustDepartment(university, department)
	}

	if question, slot := m.clarify(university, department, program); slot != session.SlotNone {
		m.sessions.Set(sessionID, session.State{
			Awaiting:   slot,
			University: university,
			Department: department,
			Program:    program,
			Campus:     campus,
			Year:       year,
		})
		m.publish(events.SubjectTurnClarify, events.TurnEvent{
			SessionID:  sessionID,
			University: university,
			Department: department,
			Program:    program,
			Campus:     campus,
			Year:       year,
			Awaiting:   string(slot),
		})
		return question
	}

	m.sessions.Clear(sessionID)
	reply := m.resolver.Reply(university, campus, department, program, year)
	m.logger.Info("turn resolved",
		"session_id", sessionID,
		"university", university,
		"department", department,
		"program", program,
		"campus", campus,
		"year", year,
	)
	m.publish(events.SubjectTurnResolved, events.TurnEvent{
		SessionID:  sessionID,
		University: university,
		Department: department,
		Program:    program,
		Campus:     campus,
		Year:       year,
	})
	return reply
}

// clarify picks the first still-missing required slot, university first, and
// phrases the follow-up question with concrete examples.
func (m *Manager) clarify(university, department, program string) (string, session.Slot) {
	if university == "" {
		return fmt.Sprintf("Which university? For example: %s.",
			strings.Join(head(m.index.Universities, 8), ", ")), session.SlotUniversity
	}
	if department == "" {
		examples := m.resolver.DepartmentsAt(university)
		if len(examples) == 0 {
			examples = m.index.Departments
		}
		return fmt.Sprintf("Which department at %s? Examples: %s.",
			university, strings.Join(head(examples, 8), ", ")), session.SlotDepartment
	}
	if program == "" {
		options := m.resolver.ProgramsFor(university, department)
		if len(options) == 0 {
			return fmt.Sprintf("Which program for %s at %s? Options: BS/MS/MPhil/PhD.",
				department, university), session.SlotProgram
		}
		return fmt.Sprintf("Which program for %s at %s? Options: %s.",
			department, university, strings.Join(options, ", ")), session.SlotProgram
	}
	return "", session.SlotNone
}

func (m *Manager) publish(subject string, evt events.TurnEvent) {
	if m.bus == nil {
		return
	}
	if err := m.bus.Publish(subject, evt); err != nil {
		m.logger.Warn("failed to publish turn event", "subject", subject, "error", err)
	}
}

func head(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
