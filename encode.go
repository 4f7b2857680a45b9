package wealth

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Store is a profile's full set of records, persisted as JSON lines. Each
// line is an envelope naming the record kind, so the file remains readable
// and diffable, one record per line, append friendly.
type Store struct {
	Profile      *Profile
	Snapshots    []*Snapshot
	Goals        []*Goal
	Debts        []*Debt
	Transactions []*Transaction
	Recurring    []*RecurringTransaction
	Level        *UserLevel
	Achievements map[string]*UserAchievement
	Milestones   []*Milestone
}

// NewStore returns an empty store for a profile.
func NewStore(profile *Profile) *Store {
	return &Store{
		Profile:      profile,
		Level:        NewUserLevel(profile.ID),
		Achievements: make(map[string]*UserAchievement),
	}
}

// envelope is one JSONL line: the record kind and its payload.
type envelope struct {
	Record string          `json:"record"`
	Data   json.RawMessage `json:"data"`
}

func writeRecord(enc *json.Encoder, kind string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot encode %s record: %w", kind, err)
	}
	return enc.Encode(envelope{Record: kind, Data: data})
}

// Encode writes the store as JSON lines. Records are grouped by kind in a
// stable order so two encodes of the same store are byte identical.
func (s *Store) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	if s.Profile != nil {
		if err := writeRecord(enc, "profile", s.Profile); err != nil {
			return err
		}
	}
	if s.Level != nil {
		if err := writeRecord(enc, "level", s.Level); err != nil {
			return err
		}
	}
	for _, v := range s.Snapshots {
		if err := writeRecord(enc, "snapshot", v); err != nil {
			return err
		}
	}
	for _, v := range s.Goals {
		if err := writeRecord(enc, "goal", v); err != nil {
			return err
		}
	}
	for _, v := range s.Debts {
		if err := writeRecord(enc, "debt", v); err != nil {
			return err
		}
	}
	for _, v := range s.Transactions {
		if err := writeRecord(enc, "transaction", v); err != nil {
			return err
		}
	}
	for _, v := range s.Recurring {
		if err := writeRecord(enc, "recurring", v); err != nil {
			return err
		}
	}
	for _, code := range sortedKeys(s.Achievements) {
		if err := writeRecord(enc, "achievement", s.Achievements[code]); err != nil {
			return err
		}
	}
	for _, v := range s.Milestones {
		if err := writeRecord(enc, "milestone", v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeStore reads a store back from JSON lines. Unknown record kinds fail
// rather than silently dropping data.
func DecodeStore(r io.Reader) (*Store, error) {
	s := &Store{Achievements: make(map[string]*UserAchievement)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := s.decodeRecord(env); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) decodeRecord(env envelope) error {
	switch env.Record {
	case "profile":
		s.Profile = &Profile{}
		return json.Unmarshal(env.Data, s.Profile)
	case "level":
		s.Level = &UserLevel{}
		return json.Unmarshal(env.Data, s.Level)
	case "snapshot":
		v := &Snapshot{}
		if err := json.Unmarshal(env.Data, v); err != nil {
			return err
		}
		s.Snapshots = append(s.Snapshots, v)
	case "goal":
		v := &Goal{}
		if err := json.Unmarshal(env.Data, v); err != nil {
			return err
		}
		s.Goals = append(s.Goals, v)
	case "debt":
		v := &Debt{}
		if err := json.Unmarshal(env.Data, v); err != nil {
			return err
		}
		s.Debts = append(s.Debts, v)
	case "transaction":
		v := &Transaction{}
		if err := json.Unmarshal(env.Data, v); err != nil {
			return err
		}
		s.Transactions = append(s.Transactions, v)
	case "recurring":
		v := &RecurringTransaction{}
		if err := json.Unmarshal(env.Data, v); err != nil {
			return err
		}
		s.Recurring = append(s.Recurring, v)
	case "achievement":
		v := &UserAchievement{}
		if err := json.Unmarshal(env.Data, v); err != nil {
			return err
		}
		s.Achievements[v.Code] = v
	case "milestone":
		v := &Milestone{}
		if err := json.Unmarshal(env.Data, v); err != nil {
			return err
		}
		s.Milestones = append(s.Milestones, v)
	default:
		return fmt.Errorf("unknown record kind %q", env.Record)
	}
	return nil
}

// sortedKeys returns the map's keys in lexical order.
func sortedKeys(m map[string]*UserAchievement) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
