package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lance13c/testforge/internal/scenario"
)

// InstructionsSheet documents the column set inside the template workbook.
const InstructionsSheet = "Instructions"

// exampleRows seed the template with a login flow users can edit in place.
var exampleRows = [][]interface{}{
	{"TC001", "User Login", "User signs in with email and password", "high", "web", 1, "Open the browser", "", "", "open", "https://example.com", "Page is loaded"},
	{"TC001", "", "", "", "", 2, "Click the email field", "id", "email-input", "click", "", "Email field is focused"},
	{"TC001", "", "", "", "", 3, "Enter the email address", "id", "email-input", "type", "test@example.com", "Email is filled in"},
	{"TC001", "", "", "", "", 4, "Click the login button", "id", "login-btn", "click", "", "User is signed in"},
	{"TC002", "Invalid Email", "Login attempt with a malformed email", "medium", "web", 1, "Enter an invalid email", "id", "email-input", "type", "invalid@email", "Error message is shown"},
	{"TC003", "Health Endpoint", "API health endpoint responds", "low", "api", 1, "Call the health endpoint", "", "", "open", "https://api.example.com/health", "Status 200"},
}

var instructionRows = [][]interface{}{
	{"Column", "Meaning", "Example"},
	{scenario.ColScenarioKey, "Groups steps into one scenario; required on every row", "TC001"},
	{scenario.ColScenarioName, "Scenario name; required on the first row of a group", "User Login"},
	{scenario.ColScenarioDescription, "Free-text description", "User signs in with email and password"},
	{scenario.ColPriority, "high, medium or low (default medium)", "high"},
	{scenario.ColTestKind, "web, mobile or api (default web)", "web"},
	{scenario.ColStepIndex, "Step order within the scenario; defaults to row order", "1"},
	{scenario.ColStepDescription, "What the step does", "Click the login button"},
	{scenario.ColLocatorStrategy, "id, name, class, css, xpath or link", "id"},
	{scenario.ColLocatorValue, "Locator string for the element", "login-btn"},
	{scenario.ColActionToken, "open, click, type, wait or select (case-insensitive)", "click"},
	{scenario.ColInputDatum, "Data the action consumes (URL, text, option)", "test@example.com"},
	{scenario.ColExpectedOutcome, "Expected result, emitted as a comment", "User is signed in"},
}

// WriteTemplate creates the scenario template workbook at the given path:
// a styled header row, a few example scenarios, and an instructions sheet.
func WriteTemplate(path string) error {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName(book.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name scenario sheet: %w", err)
	}

	headerStyle, err := book.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"366092"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, column := range scenario.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := book.SetCellValue(SheetName, cell, column); err != nil {
			return err
		}
		if err := book.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for r, rowValues := range exampleRows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := book.SetSheetRow(SheetName, cell, &rowValues); err != nil {
			return err
		}
	}

	widths := []float64{12, 20, 34, 10, 10, 10, 28, 16, 20, 12, 26, 26}
	for i, width := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := book.SetColWidth(SheetName, name, name, width); err != nil {
			return err
		}
	}

	if err := writeInstructions(book); err != nil {
		return err
	}

	if err := book.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}
	return nil
}

func writeInstructions(book *excelize.File) error {
	if _, err := book.NewSheet(InstructionsSheet); err != nil {
		return fmt.Errorf("failed to add instructions sheet: %w", err)
	}

	boldStyle, err := book.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return err
	}

	for r, rowValues := range instructionRows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := book.SetSheetRow(InstructionsSheet, cell, &rowValues); err != nil {
			return err
		}
	}
	if err := book.SetCellStyle(InstructionsSheet, "A1", "C1", boldStyle); err != nil {
		return err
	}

	for name, width := range map[string]float64{"A": 22, "B": 50, "C": 34} {
		if err := book.SetColWidth(InstructionsSheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}
