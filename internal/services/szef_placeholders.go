package services

// The Szef management, finance and report screens are not implemented yet.
// These fixtures only give the templates something to lay out.

type PlaceholderWorker struct {
	FullName   string
	Brigade    string
	HourlyRate int
}

type PlaceholderLedgerEntry struct {
	Date        string
	Description string
	Amount      int
}

type PlaceholderReportRow struct {
	Label string
	Hours int
	Pay   int
}

func PlaceholderWorkers() []PlaceholderWorker {
	return []PlaceholderWorker{
		{FullName: "Jan Kowalski", Brigade: "Brygada A", HourlyRate: 35},
		{FullName: "Piotr Nowak", Brigade: "Brygada A", HourlyRate: 32},
		{FullName: "Marek Wiśniewski", Brigade: "Brygada B", HourlyRate: 30},
	}
}

func PlaceholderLedger() []PlaceholderLedgerEntry {
	return []PlaceholderLedgerEntry{
		{Date: "2025-01-10", Description: "Zaliczka - Brygada A", Amount: -2000},
		{Date: "2025-01-15", Description: "Faktura 01/2025", Amount: 18500},
		{Date: "2025-01-31", Description: "Wypłaty - styczeń", Amount: -14200},
	}
}

func PlaceholderHoursReport() []PlaceholderReportRow {
	return []PlaceholderReportRow{
		{Label: "Brygada A", Hours: 412},
		{Label: "Brygada B", Hours: 368},
	}
}

func PlaceholderPayrollReport() []PlaceholderReportRow {
	return []PlaceholderReportRow{
		{Label: "Jan Kowalski", Hours: 168, Pay: 5880},
		{Label: "Piotr Nowak", Hours: 160, Pay: 5120},
		{Label: "Marek Wiśniewski", Hours: 152, Pay: 4560},
	}
}
