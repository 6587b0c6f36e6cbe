package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"sharemycar/internal/domain"
)

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func renderVehicles(out io.Writer, vehicles []domain.Vehicle) {
	if len(vehicles) == 0 {
		fmt.Fprintln(out, "No vehicles found.")
		return
	}
	w := newTable(out)
	fmt.Fprintln(w, "ID\tBRAND\tMODEL\tMILEAGE\tPRICE/DAY\tMAINT/KM\tAVAILABLE")
	for _, v := range vehicles {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\t%s\n",
			v.ID, v.Brand, v.Model, v.Mileage, v.DailyRentalPrice, money(v.MaintenanceCostPerKm), yesNo(v.IsAvailable))
	}
	w.Flush()
}

func renderBookings(out io.Writer, bookings []domain.Booking) {
	if len(bookings) == 0 {
		fmt.Fprintln(out, "No active bookings found.")
		return
	}
	w := newTable(out)
	fmt.Fprintln(w, "ID\tCUSTOMER\tVEHICLE\tSTART\tDUE\tEST DAYS\tEST KM\tEST COST")
	for _, b := range bookings {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%d\t%d\t%s\n",
			b.ID, b.CustomerName, b.VehicleID, b.StartDate, b.DueDate, b.EstDays, b.EstKm, money(b.EstCost))
	}
	w.Flush()
}

func renderReturns(out io.Writer, history []domain.ReturnHistoryEntry) {
	if len(history) == 0 {
		fmt.Fprintln(out, "No returns found.")
		return
	}
	w := newTable(out)
	fmt.Fprintln(w, "ID\tBOOKING\tCUSTOMER\tVEHICLE\tDATE\tKM\tDAYS LATE\tLATE FEE\tCLEANING\tMAINT\tTOTAL")
	for _, r := range history {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s %s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			r.ID, r.BookingID, r.CustomerName, r.Brand, r.Model, r.ReturnDate, r.ActualKm, r.DaysLate,
			money(r.LateFee), money(r.CleaningFee), money(r.MaintenanceCost), money(r.TotalCost))
	}
	w.Flush()
}

func renderMaintenance(out io.Writer, history []domain.MaintenanceHistoryEntry) {
	if len(history) == 0 {
		fmt.Fprintln(out, "No maintenance records found.")
		return
	}
	w := newTable(out)
	fmt.Fprintln(w, "ID\tVEHICLE\tDATE\tMILEAGE\tCOST\tDESCRIPTION\tCOMPLETED")
	for _, m := range history {
		fmt.Fprintf(w, "%d\t%s %s\t%s\t%d\t%s\t%s\t%s\n",
			m.ID, m.Brand, m.Model, m.Date, m.Mileage, money(m.Cost), m.Description, yesNo(m.IsCompleted))
	}
	w.Flush()
}

func renderLedger(out io.Writer, history []domain.LedgerHistoryEntry) {
	if len(history) == 0 {
		fmt.Fprintln(out, "No transactions found.")
		return
	}
	w := newTable(out)
	fmt.Fprintln(w, "ID\tTYPE\tDATE\tCUSTOMER\tVEHICLE\tBASE\tCLEANING\tMAINT\tLATE\tTOTAL")
	for _, t := range history {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s %s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Type, t.Date, t.CustomerName, t.Brand, t.Model,
			money(t.BaseRevenue), moneyPtr(t.CleaningFee), moneyPtr(t.MaintenanceCost), moneyPtr(t.LateFee), money(t.TotalAmount))
	}
	w.Flush()
}

func moneyPtr(v *float64) string {
	if v == nil {
		return "-"
	}
	return money(*v)
}
