package knapsack

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Instance is a 0/1 knapsack instance loaded from a YAML file: one
// entry per item, plus the shared capacity.
type Instance struct {
	Capacity int    `yaml:"capacity"`
	Items    []Item `yaml:"items"`
}

// Item is a single candidate object: how much room it takes and how
// much it is worth.
type Item struct {
	Weight int `yaml:"weight"`
	Value  int `yaml:"value"`
}

// ErrEmptyInstance indicates an instance file with zero items.
var ErrEmptyInstance = errors.New("knapsack: instance has no items")

// LoadInstance reads and validates an Instance from a YAML file.
func LoadInstance(path string) (Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Instance{}, errors.Wrapf(err, "knapsack: reading instance %q", path)
	}

	var inst Instance
	if err := yaml.Unmarshal(data, &inst); err != nil {
		return Instance{}, errors.Wrapf(err, "knapsack: parsing instance %q", path)
	}

	if len(inst.Items) == 0 {
		return Instance{}, ErrEmptyInstance
	}
	if inst.Capacity < 0 {
		return Instance{}, errors.Errorf("knapsack: negative capacity %d in %q", inst.Capacity, path)
	}

	return inst, nil
}

// Weights returns the per-item weights in item order.
func (inst Instance) Weights() []int {
	w := make([]int, len(inst.Items))
	for i, it := range inst.Items {
		w[i] = it.Weight
	}

	return w
}

// Values returns the per-item values in item order.
func (inst Instance) Values() []int {
	v := make([]int, len(inst.Items))
	for i, it := range inst.Items {
		v[i] = it.Value
	}

	return v
}
