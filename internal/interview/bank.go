package interview

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type bankFile struct {
	Roles map[string][]Question `yaml:"roles"`
}

// LoadBankFile reads a question bank from a YAML file. The file replaces the
// built-in bank entirely, so it must define at least one role and every role
// must carry at least one question.
func LoadBankFile(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading question bank file %s: %w", path, err)
	}

	var file bankFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing question bank file %s: %w", path, err)
	}

	if err := validateBank(&file); err != nil {
		return nil, fmt.Errorf("validating question bank file %s: %w", path, err)
	}

	bank := make(Bank, len(file.Roles))
	for role, questions := range file.Roles {
		for i := range questions {
			category, _ := ParseCategory(string(questions[i].Category))
			questions[i].Category = category
		}
		bank[Role(role)] = questions
	}

	return bank, nil
}

func validateBank(file *bankFile) error {
	if len(file.Roles) == 0 {
		return fmt.Errorf("no roles defined")
	}

	if _, ok := file.Roles[string(RoleSales)]; !ok {
		return fmt.Errorf("role %q is required as the fallback role", RoleSales)
	}

	seen := make(map[string]string)
	for role, questions := range file.Roles {
		if len(questions) == 0 {
			return fmt.Errorf("role %q has no questions", role)
		}

		for i, q := range questions {
			if q.ID == "" {
				return fmt.Errorf("role %q: question %d has no id", role, i)
			}
			if other, ok := seen[q.ID]; ok {
				return fmt.Errorf("question id %q is used by both %q and %q", q.ID, other, role)
			}
			seen[q.ID] = role

			if q.Prompt == "" {
				return fmt.Errorf("question %q has no prompt", q.ID)
			}
			if _, ok := ParseCategory(string(q.Category)); !ok {
				return fmt.Errorf("question %q has unknown category %q", q.ID, q.Category)
			}
		}
	}

	return nil
}
