package schema

import (
	"fmt"

	"github.com/radar-ali360/radar-engine/pkg/models"
	"github.com/radar-ali360/radar-engine/pkg/rowutil"
)

// stageNames is the fixed five-meeting table. Radar rows encode the
// diagnostic stage either by name or by meeting number.
var stageNames = map[int]string{
	1: models.StageNomear,
	2: models.StageElaborar,
	3: models.StageExperimentar,
	4: models.StageEvoluir,
	5: models.StageConcluido,
}

// StageName translates a numeric stage code. Codes outside the table get a
// deterministic placeholder so downstream grouping stays stable.
func StageName(code int) string {
	if name, ok := stageNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Estágio %d", code)
}

// stageFromRow probes the stage alias columns. A numeric cell is translated
// through the stage table; a named stage passes through untouched.
func stageFromRow(row Row, names []string) string {
	for _, name := range names {
		v, ok := row[name]
		if !ok {
			continue
		}
		if code, isNum := rowutil.CellInt(v); isNum {
			return StageName(code)
		}
		if s := rowutil.CellString(v); s != "" {
			return s
		}
	}
	return ""
}
