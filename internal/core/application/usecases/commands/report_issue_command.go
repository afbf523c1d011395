package commands

import (
	"errors"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/pkg/errs"
	"picking/internal/pkg/guard"
)

var ErrReportIssueCommandIsNotConstructed = errors.New(
	"ReportIssueCommand must be created via NewReportIssueCommand constructor",
)

// ReportIssueCommand represents a worker's report that an item cannot be
// picked: the product is missing, misplaced, damaged, or short.
type ReportIssueCommand struct { //nolint:recvcheck //using for validation
	listID     kernel.UUID
	itemID     kernel.UUID
	issueType  pickinglist.IssueType
	note       string
	reportedBy string

	guard guard.ConstructorGuard
}

// NewReportIssueCommand creates a command to report a picking issue.
// The note is optional free text for the floor supervisor.
func NewReportIssueCommand(
	listID kernel.UUID,
	itemID kernel.UUID,
	issueType pickinglist.IssueType,
	note string,
	reportedBy string,
) (ReportIssueCommand, error) {
	command := ReportIssueCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setListID(listID),
		command.setItemID(itemID),
		command.setIssueType(issueType),
		command.setReportedBy(reportedBy),
	); err != nil {
		return ReportIssueCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportIssueCommand) Validate() error {
	return c.guard.Validate(ErrReportIssueCommandIsNotConstructed)
}

// ListID returns the identifier of the owning list.
func (c ReportIssueCommand) ListID() kernel.UUID {
	return c.listID
}

// ItemID returns the identifier of the item the issue is reported on.
func (c ReportIssueCommand) ItemID() kernel.UUID {
	return c.itemID
}

// IssueType returns the issue classification.
func (c ReportIssueCommand) IssueType() pickinglist.IssueType {
	return c.issueType
}

// Note returns the free-text note, or "" for none.
func (c ReportIssueCommand) Note() string {
	return c.note
}

// ReportedBy returns the reporting worker.
func (c ReportIssueCommand) ReportedBy() string {
	return c.reportedBy
}

func (c *ReportIssueCommand) setListID(listID kernel.UUID) error {
	if err := listID.Validate(); err != nil {
		return err
	}

	c.listID = listID
	return nil
}

func (c *ReportIssueCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *ReportIssueCommand) setIssueType(issueType pickinglist.IssueType) error {
	if err := issueType.Validate(); err != nil {
		return err
	}

	c.issueType = issueType
	return nil
}

func (c *ReportIssueCommand) setReportedBy(reportedBy string) error {
	if reportedBy == "" {
		return errs.NewValueIsRequiredError("reportedBy")
	}

	c.reportedBy = reportedBy
	return nil
}
