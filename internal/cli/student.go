package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/noah-isme/scholarship-portal/internal/dto"
	"github.com/noah-isme/scholarship-portal/internal/models"
)

func (c *CLI) studentMenu() bool {
	color.Cyan("\n--- Student Dashboard ---")
	fmt.Println("1. Browse scholarships")
	fmt.Println("2. Scholarship details")
	fmt.Println("3. Apply for a scholarship")
	fmt.Println("4. My applications")
	fmt.Println("5. Export my applications")
	fmt.Println("6. Admin panel")
	fmt.Println("7. Exit")

	switch c.readLine("\nEnter your choice (1-7): ") {
	case "1":
		c.browseScholarships()
	case "2":
		c.scholarshipDetails()
	case "3":
		c.applyForScholarship()
	case "4":
		c.myApplications()
	case "5":
		c.exportApplications()
	case "6":
		// Gated section: redirect to the login prompt, never fail silently.
		c.promptLogin()
	case "7":
		color.Green("Thank you for using the Scholarship Portal!")
		return true
	default:
		color.Red("Invalid choice. Please try again.")
	}
	return false
}

func (c *CLI) browseScholarships() {
	form := dto.ScholarshipFilterForm{
		Query:     c.readLine("Search by name (blank for all): "),
		MinAmount: c.readLine("Minimum amount (blank for any): "),
		MinGPA:    c.readLine("Minimum GPA (blank for any): "),
		SortBy:    c.readLine("Sort by [deadline/amount/name]: "),
	}
	views := c.scholarships.List(form)
	if len(views) == 0 {
		color.Yellow("No scholarships found matching your criteria")
		return
	}
	renderScholarshipTable(views)
}

func (c *CLI) scholarshipDetails() {
	id, ok := readID(c.readLine("Scholarship ID: "))
	if !ok {
		color.Red("Scholarship ID must be a number")
		return
	}
	view, err := c.scholarships.Get(id)
	if err != nil {
		color.Red("Scholarship not found")
		return
	}
	fmt.Printf("\n%s\n", color.New(color.Bold).Sprint(view.Name))
	fmt.Printf("Amount:      $%.0f\n", view.Amount)
	fmt.Printf("Deadline:    %s (%s)\n", view.Deadline, deadlineStatus(view))
	fmt.Printf("Minimum GPA: %.1f\n", view.GPA)
	fmt.Printf("Awards:      %d\n", view.Awards)
	fmt.Printf("Description: %s\n", view.Description)
}

func (c *CLI) applyForScholarship() {
	form := dto.ApplicationForm{
		ScholarshipID: c.readLine("Scholarship ID: "),
		StudentName:   c.readLine("Your name: "),
		StudentEmail:  c.readLine("Your email: "),
		Essay:         c.readLine("Essay: "),
	}
	if _, err := c.applications.Submit(form); err != nil {
		color.Red("Could not submit application: %v", err)
	}
}

func (c *CLI) myApplications() {
	apps := c.applications.ListForStudentView()
	if len(apps) == 0 {
		color.Yellow("You haven't applied for any scholarships yet. Start exploring available opportunities!")
		return
	}
	renderApplicationTable(apps)
}

func (c *CLI) exportApplications() {
	format, ok := readFormat(c.readLine("Format [csv/pdf]: "))
	if !ok {
		color.Red("Unsupported format")
		return
	}
	path, err := c.exports.ExportApplications(format)
	if err != nil {
		color.Red("Export failed: %v", err)
		return
	}
	color.Green("Applications exported to %s", path)
}

func renderScholarshipTable(views []dto.ScholarshipView) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Amount", "Deadline", "Min GPA", "Awards", "Status"})
	for _, v := range views {
		table.Append([]string{
			strconv.FormatInt(v.ID, 10),
			v.Name,
			fmt.Sprintf("$%.0f", v.Amount),
			v.Deadline,
			fmt.Sprintf("%.1f", v.GPA),
			strconv.Itoa(v.Awards),
			deadlineStatus(v),
		})
	}
	table.Render()
}

func renderApplicationTable(apps []models.Application) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Scholarship", "Student", "Email", "Status", "Submitted"})
	for _, a := range apps {
		table.Append([]string{
			strconv.FormatInt(a.ID, 10),
			a.ScholarshipName,
			a.StudentName,
			a.StudentEmail,
			a.Status.Label(),
			a.SubmittedDate,
		})
	}
	table.Render()
}

func deadlineStatus(v dto.ScholarshipView) string {
	if v.Closed {
		return "Closed"
	}
	return fmt.Sprintf("%d days left", v.DaysLeft)
}

func readID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
