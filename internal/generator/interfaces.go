package generator

import "github.com/MKhiriev/go-pass-gen/models"

// Generator produces password lists from a resolved [Plan].
type Generator interface {
	// Generate returns exactly count passwords built from plan and prints
	// them framed by separator lines. count < 1 returns [ErrInvalidCount].
	Generate(plan Plan, count int) (models.PasswordList, error)
}
