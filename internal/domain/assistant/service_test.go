// internal/domain/assistant/service_test.go
package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/your-org/restaurant-backend/internal/domain/menu"
)

func TestFilterMenuItems(t *testing.T) {
	items := []menu.MenuItem{
		{Name: "Pho Bo", Description: "Beef noodle soup"},
		{Name: "Banh Mi", Description: "Baguette sandwich"},
		{Name: "Com Tam", Description: "Broken rice with grilled pork"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "matches name case-insensitively", query: "pho", want: []string{"Pho Bo"}},
		{name: "matches description", query: "rice", want: []string{"Com Tam"}},
		{name: "matches multiple items", query: "b", want: []string{"Pho Bo", "Banh Mi", "Com Tam"}},
		{name: "no match", query: "sushi", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterMenuItems(items, tt.query)
			names := make([]string, 0, len(got))
			for _, item := range got {
				names = append(names, item.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold("Pho Bo", "PHO"))
	assert.True(t, containsFold("Banh Mi", "mi"))
	assert.False(t, containsFold("Com Tam", "pho"))
	assert.True(t, containsFold("anything", ""))
}
