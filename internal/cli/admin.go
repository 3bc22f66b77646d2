package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/noah-isme/scholarship-portal/internal/dto"
	"github.com/noah-isme/scholarship-portal/internal/models"
	"github.com/noah-isme/scholarship-portal/pkg/export"
)

func (c *CLI) adminMenu() bool {
	if err := c.auth.RequireAdmin(); err != nil {
		c.promptLogin()
		return false
	}

	color.Cyan("\n--- Admin Panel (%s) ---", c.auth.Session().Username)
	fmt.Println("1. Manage scholarships")
	fmt.Println("2. Add scholarship")
	fmt.Println("3. Edit scholarship")
	fmt.Println("4. Delete scholarship")
	fmt.Println("5. Review applications")
	fmt.Println("6. Analytics")
	fmt.Println("7. Export scholarships")
	fmt.Println("8. Export applications")
	fmt.Println("9. Logout")
	fmt.Println("10. Exit")

	switch c.readLine("\nEnter your choice (1-10): ") {
	case "1":
		c.listScholarshipsAdmin()
	case "2":
		c.addScholarship()
	case "3":
		c.editScholarship()
	case "4":
		c.deleteScholarship()
	case "5":
		c.reviewApplications()
	case "6":
		c.showAnalytics()
	case "7":
		c.exportScholarships()
	case "8":
		c.exportApplications()
	case "9":
		c.auth.Logout()
	case "10":
		color.Green("Thank you for using the Scholarship Portal!")
		return true
	default:
		color.Red("Invalid choice. Please try again.")
	}
	return false
}

func (c *CLI) listScholarshipsAdmin() {
	views := c.scholarships.ListAll()
	if len(views) == 0 {
		color.Yellow("No scholarships added yet")
		return
	}
	renderScholarshipTable(views)
}

func (c *CLI) addScholarship() {
	if _, err := c.scholarships.Create(c.readScholarshipForm()); err != nil {
		color.Red("Could not add scholarship: %v", err)
	}
}

func (c *CLI) editScholarship() {
	id, ok := readID(c.readLine("Scholarship ID to edit: "))
	if !ok {
		color.Red("Scholarship ID must be a number")
		return
	}
	if _, err := c.scholarships.Get(id); err != nil {
		color.Red("Scholarship not found")
		return
	}
	if err := c.scholarships.Update(id, c.readScholarshipForm()); err != nil {
		color.Red("Could not update scholarship: %v", err)
	}
}

func (c *CLI) deleteScholarship() {
	id, ok := readID(c.readLine("Scholarship ID to delete: "))
	if !ok {
		color.Red("Scholarship ID must be a number")
		return
	}
	confirmed := c.confirm("Are you sure you want to delete this scholarship?")
	removed, err := c.scholarships.Delete(id, confirmed)
	if err != nil {
		color.Red("Could not delete scholarship: %v", err)
		return
	}
	if confirmed && !removed {
		color.Yellow("No scholarship with that ID")
	}
}

func (c *CLI) reviewApplications() {
	apps := c.applications.ListForAdminReview()
	if len(apps) == 0 {
		color.Yellow("No applications to review yet")
		return
	}
	renderApplicationTable(apps)

	raw := c.readLine("\nApplication ID to update (blank to skip): ")
	if raw == "" {
		return
	}
	id, ok := readID(raw)
	if !ok {
		color.Red("Application ID must be a number")
		return
	}
	fmt.Print("Statuses: ")
	for i, status := range models.AllStatuses() {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Print(string(status))
	}
	fmt.Println()
	status := c.readLine("New status: ")
	if err := c.applications.SetStatus(id, status); err != nil {
		color.Red("Could not update status: %v", err)
	}
}

func (c *CLI) showAnalytics() {
	summary := c.analytics.Summary()
	color.Cyan("\n--- Analytics ---")
	fmt.Printf("Total applications: %d\n", summary.Total)
	fmt.Printf("Approved:           %d\n", summary.Approved)
	fmt.Printf("Under review:       %d\n", summary.UnderReview)
	fmt.Printf("Approval rate:      %d%%\n", summary.ApprovalRate)
}

func (c *CLI) exportScholarships() {
	format, ok := readFormat(c.readLine("Format [csv/pdf]: "))
	if !ok {
		color.Red("Unsupported format")
		return
	}
	path, err := c.exports.ExportScholarships(format)
	if err != nil {
		color.Red("Export failed: %v", err)
		return
	}
	color.Green("Scholarships exported to %s", path)
}

func (c *CLI) readScholarshipForm() dto.ScholarshipForm {
	return dto.ScholarshipForm{
		Name:        c.readLine("Name: "),
		Description: c.readLine("Description: "),
		Amount:      c.readLine("Amount: "),
		Deadline:    c.readLine("Deadline (YYYY-MM-DD): "),
		GPA:         c.readLine("Minimum GPA: "),
		Awards:      c.readLine("Number of awards: "),
	}
}

func readFormat(raw string) (export.Format, bool) {
	format := export.Format(raw)
	return format, format.Valid()
}
