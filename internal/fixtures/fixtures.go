// Package fixtures holds the baseline dataset the store is reset to.
package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mini-foerderportal/internal/core/domain"
)

// Baseline is the reference instant all seeded timestamps derive from
var Baseline = time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

// AddMinutesToBaseline returns Baseline shifted by the given minutes
func AddMinutesToBaseline(minutes int) time.Time {
	return Baseline.Add(time.Duration(minutes) * time.Minute)
}

// Dataset is the persisted fixture format: flat top-level collections,
// applications embed their comments.
type Dataset struct {
	Users        []domain.User        `json:"users"`
	Programs     []domain.Program     `json:"programs"`
	Applications []domain.Application `json:"applications"`
}

// Default returns a fresh copy of the built-in dataset
func Default() Dataset {
	return Dataset{
		Users: []domain.User{
			{
				ID:          "user-alice",
				Username:    "alice",
				Password:    "test123",
				Role:        domain.RoleApplicant,
				DisplayName: "Alice Applicant",
				Token:       "token-applicant",
			},
			{
				ID:          "user-officer",
				Username:    "officer",
				Password:    "test123",
				Role:        domain.RoleOfficer,
				DisplayName: "Olaf Officer",
				Token:       "token-officer",
			},
		},
		Programs: []domain.Program{
			{
				ID:          "program-energieeffizienz",
				Name:        "Energieeffizienz Wohnen",
				Summary:     "Förderung energetischer Sanierungen für Wohngebäude.",
				Description: "Unterstützt energetische Sanierungen wie Dämmung, Heizungsmodernisierung oder Solaranlagen mit zinsgünstigen Darlehen sowie Tilgungszuschüssen.",
				AmountMin:   5000,
				AmountMax:   150000,
				UpdatedAt:   AddMinutesToBaseline(0),
				Tags:        []string{"wohnen", "energie", "sanierung"},
			},
			{
				ID:          "program-gruendung-innovation",
				Name:        "Gründung & Innovation",
				Summary:     "Förderprogramm für Start-ups und innovative KMU.",
				Description: "Finanzierung technologischer Innovationen, Beratungskosten und Markteinführung innovativer Produkte für junge Unternehmen.",
				AmountMin:   10000,
				AmountMax:   500000,
				UpdatedAt:   AddMinutesToBaseline(15),
				Tags:        []string{"gründung", "innovation", "kmu"},
			},
			{
				ID:          "program-soziale-infrastruktur",
				Name:        "Soziale Infrastruktur",
				Summary:     "Fördert den Ausbau sozialer Einrichtungen in Kommunen.",
				Description: "Investitionskostenzuschüsse für Kitas, Schulen und Pflegeeinrichtungen mit Fokus auf Barrierefreiheit und Klimaneutralität.",
				AmountMin:   10000,
				AmountMax:   400000,
				UpdatedAt:   AddMinutesToBaseline(30),
				Tags:        []string{"kommunen", "bildung", "pflege"},
			},
		},
		Applications: []domain.Application{
			{
				ID:             "application-demo-001",
				ApplicantName:  "Energiestadt Altstadt GmbH",
				ApplicantEmail: "kontakt@altstadt-gmbh.de",
				ProgramID:      "program-energieeffizienz",
				Status:         domain.StatusReview,
				Amount:         180000,
				Purpose:        "Energetische Sanierung eines Mehrfamilienhauses inklusive Fassadendämmung und Wärmepumpeninstallation.",
				CreatedAt:      AddMinutesToBaseline(45),
				UpdatedAt:      AddMinutesToBaseline(120),
				Comments: []domain.Comment{
					{
						ID:         "comment-001",
						AuthorRole: domain.RoleOfficer,
						Message:    "Bitte Nachweis zur geplanten CO₂-Einsparung ergänzen. Aktuell keine Bewertungsgrundlage.",
						CreatedAt:  AddMinutesToBaseline(120),
					},
				},
			},
		},
	}
}

// Validate checks that every enum value in the dataset is a known variant
// and that ids are unique per collection.
func (d Dataset) Validate() error {
	seen := map[string]bool{}
	unique := func(kind, id string) error {
		key := kind + "/" + id
		if id == "" || seen[key] {
			return fmt.Errorf("%s id %q is empty or duplicated", kind, id)
		}
		seen[key] = true
		return nil
	}

	for _, u := range d.Users {
		if err := unique("user", u.ID); err != nil {
			return err
		}
		if _, err := domain.ParseRole(string(u.Role)); err != nil {
			return err
		}
	}
	for _, p := range d.Programs {
		if err := unique("program", p.ID); err != nil {
			return err
		}
	}
	for _, a := range d.Applications {
		if err := unique("application", a.ID); err != nil {
			return err
		}
		if _, err := domain.ParseApplicationStatus(string(a.Status)); err != nil {
			return err
		}
		for _, c := range a.Comments {
			if err := unique("comment", c.ID); err != nil {
				return err
			}
			if _, err := domain.ParseRole(string(c.AuthorRole)); err != nil {
				return &domain.IntegrityError{Entity: "comment", Field: "authorRole", Value: string(c.AuthorRole)}
			}
		}
	}
	return nil
}

// Load reads and validates a dataset written by Write
func Load(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to read fixtures: %w", err)
	}

	var d Dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return Dataset{}, fmt.Errorf("failed to decode fixtures %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return Dataset{}, fmt.Errorf("invalid fixtures %s: %w", path, err)
	}
	return d, nil
}

// Write stores the dataset as indented JSON, creating parent directories
func Write(path string, d Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create fixture directory: %w", err)
	}

	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode fixtures: %w", err)
	}
	return os.WriteFile(path, append(raw, '\n'), 0o644)
}
