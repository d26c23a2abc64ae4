// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"math/rand/v2"
	"slices"

	"github.com/MKhiriev/go-pass-gen/models"
)

// Plan is the resolved per-position recipe for one password. It is built
// either from a policy, where every position picks among the same classes,
// or from a template, where every position has a fixed class.
type Plan struct {
	length    int
	template  bool
	classes   []models.CharClass
	positions models.GenerationTemplate
}

// NewPolicyPlan resolves a policy into a plan of policy.Length positions.
// Each position first draws a class uniformly among the enabled classes and
// then a character uniformly within that class.
func NewPolicyPlan(policy models.GenerationPolicy) Plan {
	return Plan{
		length:  policy.Length,
		classes: policy.Classes(),
	}
}

// NewTemplatePlan resolves a template into a plan whose i-th position uses
// the class of the i-th token.
func NewTemplatePlan(tmpl models.GenerationTemplate) Plan {
	return Plan{
		length:    len(tmpl),
		template:  true,
		positions: slices.Clone(tmpl),
	}
}

// Len is the number of characters in every password produced by the plan.
func (p Plan) Len() int {
	return p.length
}

// IsTemplate reports whether the plan was built from a template.
func (p Plan) IsTemplate() bool {
	return p.template
}

func (p Plan) classAt(i int, r *rand.Rand) models.CharClass {
	if p.template {
		return p.positions[i]
	}
	return p.classes[r.IntN(len(p.classes))]
}
