package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// PrintArea returns the first print area defined for sheetName, if any.
// Ingestion restricts the table to it when present.
func PrintArea(f *excelize.File, sheetName string) (*Bounds, bool) {
	for _, dn := range f.GetDefinedName() {
		// Look for _xlnm.Print_Area defined name
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		if dn.Scope != "" && dn.Scope != "Workbook" && dn.Scope != sheetName {
			continue
		}
		sheet, area := parsePrintAreaReference(dn.RefersTo)
		if area != nil && sheet == sheetName {
			return area, true
		}
	}
	return nil, false
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
// Only the first range of a multi-range reference is used.
func parsePrintAreaReference(ref string) (string, *Bounds) {
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		// Remove quotes from sheet name
		sheet := strings.Trim(part[:idx], "'")
		if area := parseRangeToBounds(part[idx+1:]); area != nil {
			return sheet, area
		}
	}
	return "", nil
}

// parseRangeToBounds parses a range string like $A$1:$D$10.
func parseRangeToBounds(rangeStr string) *Bounds {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &Bounds{
		MinRow: startRow - 1,
		MaxRow: endRow - 1,
		MinCol: startCol - 1,
		MaxCol: endCol - 1,
	}
}
