// cmd/issue/main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"libracard/internal/cards"
	"log"
	"os"
	"strings"
)

// Interactive driver: issues a single card against the in-memory repository.
func main() {
	reader := bufio.NewReader(os.Stdin)

	name := prompt(reader, "Full name: ")
	email := prompt(reader, "Email: ")
	fmt.Println("Categories: student_undergrad, student_grad, faculty, staff, external")
	category := prompt(reader, "Category: ")

	repo := cards.NewMemoryRepository()
	notifier := cards.NewEmailNotifier("smtp.uni.edu", 587)
	printer := cards.NewConsolePrinter(nil)
	svc := cards.NewService(cards.NewValidator(), cards.NewTextRenderer(""), repo, notifier, printer)

	member := cards.NewMember(name, email, cards.Category(category))
	result, err := svc.IssueCard(context.Background(), member)
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}

	fmt.Printf("\nSummary: member_id=%s fee=%.2f\n", result.MemberID, result.Fee)
}

func prompt(r *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := r.ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	return strings.TrimSpace(line)
}
