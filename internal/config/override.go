package config

import "github.com/meshsel/selplot/pkg/selplot/models"

func (o *AxisOverride) apply(a *models.AxisSpec) {
	if o == nil {
		return
	}
	if o.Domain != nil {
		a.Domain = append([]float64(nil), o.Domain...)
	}
	if o.Values != nil {
		a.Values = append([]float64(nil), o.Values...)
	}
	if o.Title != nil {
		a.Title = *o.Title
	}
}
