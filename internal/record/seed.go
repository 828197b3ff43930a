package record

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed is the fixed sample data a new session starts with.
type Seed struct {
	Doctors []Doctor
	Drivers []Driver
	Orders  []Order
}

type seedFile struct {
	Doctors []struct {
		ID             string `yaml:"id"`
		Name           string `yaml:"name"`
		Email          string `yaml:"email"`
		Phone          string `yaml:"phone"`
		Specialization string `yaml:"specialization"`
		Address        string `yaml:"address"`
		Status         Status `yaml:"status"`
		JoinDate       string `yaml:"join_date"`
		TotalOrders    int    `yaml:"total_orders"`
	} `yaml:"doctors"`
	Drivers []Driver `yaml:"drivers"`
	Orders  []Order  `yaml:"orders"`
}

// LoadSeed decodes the embedded sample data. Each call returns fresh slices.
func LoadSeed() (Seed, error) {
	return ParseSeed(seedYAML)
}

// ParseSeed decodes a seed document.
func ParseSeed(data []byte) (Seed, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	var s Seed
	for _, d := range f.Doctors {
		joined, err := time.Parse(time.DateOnly, d.JoinDate)
		if err != nil {
			return Seed{}, fmt.Errorf("seed doctor %s join_date: %w", d.ID, err)
		}
		if !d.Status.Valid() {
			return Seed{}, fmt.Errorf("seed doctor %s: unknown status %q", d.ID, d.Status)
		}
		if d.TotalOrders < 0 {
			return Seed{}, fmt.Errorf("seed doctor %s: negative total_orders", d.ID)
		}
		s.Doctors = append(s.Doctors, Doctor{
			ID:             d.ID,
			Name:           d.Name,
			Email:          d.Email,
			Phone:          d.Phone,
			Specialization: d.Specialization,
			Address:        d.Address,
			Status:         d.Status,
			JoinDate:       joined,
			TotalOrders:    d.TotalOrders,
		})
	}
	s.Drivers = f.Drivers
	s.Orders = f.Orders
	return s, nil
}

// MustLoadSeed is LoadSeed for callers that treat a broken embedded fixture
// as a programming error.
func MustLoadSeed() Seed {
	s, err := LoadSeed()
	if err != nil {
		panic(err)
	}
	return s
}
