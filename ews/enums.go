package ews

// ServerVersion is the RequestServerVersion sent with every request.
type ServerVersion string

// Server versions.
const (
	Exchange2007    ServerVersion = "Exchange2007"
	Exchange2007SP1 ServerVersion = "Exchange2007_SP1"
	Exchange2010    ServerVersion = "Exchange2010"
	Exchange2010SP1 ServerVersion = "Exchange2010_SP1"
	Exchange2010SP2 ServerVersion = "Exchange2010_SP2"
	Exchange2013    ServerVersion = "Exchange2013"
	Exchange2013SP1 ServerVersion = "Exchange2013_SP1"
)

// DefaultServerVersion is used when no version is configured.
const DefaultServerVersion = Exchange2013SP1

// Sensitivity of an item.
type Sensitivity string

// Sensitivities.
const (
	SensitivityNormal       Sensitivity = "Normal"
	SensitivityPersonal     Sensitivity = "Personal"
	SensitivityPrivate      Sensitivity = "Private"
	SensitivityConfidential Sensitivity = "Confidential"
)

// Importance of an item.
type Importance string

// Importance levels.
const (
	ImportanceLow    Importance = "Low"
	ImportanceNormal Importance = "Normal"
	ImportanceHigh   Importance = "High"
)

// MessageDisposition controls whether CreateItem and UpdateItem send a
// message, save it, or both.
type MessageDisposition string

// Message dispositions.
const (
	SaveOnly        MessageDisposition = "SaveOnly"
	SendOnly        MessageDisposition = "SendOnly"
	SendAndSaveCopy MessageDisposition = "SendAndSaveCopy"
)

// SendMeetingInvitations controls invitations for new calendar items.
type SendMeetingInvitations string

// Invitation modes.
const (
	SendToNone           SendMeetingInvitations = "SendToNone"
	SendOnlyToAll        SendMeetingInvitations = "SendOnlyToAll"
	SendToAllAndSaveCopy SendMeetingInvitations = "SendToAllAndSaveCopy"
)

// SendMeetingInvitationsOrCancellations controls notifications when a
// calendar item is updated.
type SendMeetingInvitationsOrCancellations string

// Update notification modes.
const (
	SendToNoneOnUpdate           SendMeetingInvitationsOrCancellations = "SendToNone"
	SendOnlyToAllOnUpdate        SendMeetingInvitationsOrCancellations = "SendOnlyToAll"
	SendOnlyToChanged            SendMeetingInvitationsOrCancellations = "SendOnlyToChanged"
	SendToAllAndSaveCopyOnUpdate SendMeetingInvitationsOrCancellations = "SendToAllAndSaveCopy"
	SendToChangedAndSaveCopy     SendMeetingInvitationsOrCancellations = "SendToChangedAndSaveCopy"
)

// SendMeetingCancellations controls cancellations when a calendar item is
// deleted.
type SendMeetingCancellations string

// Cancellation modes.
const (
	CancellationsToNone           SendMeetingCancellations = "SendToNone"
	CancellationsOnlyToAll        SendMeetingCancellations = "SendOnlyToAll"
	CancellationsToAllAndSaveCopy SendMeetingCancellations = "SendToAllAndSaveCopy"
)

// ConflictResolution decides how UpdateItem treats a stale change key.
type ConflictResolution string

// Conflict resolution modes.
const (
	NeverOverwrite  ConflictResolution = "NeverOverwrite"
	AutoResolve     ConflictResolution = "AutoResolve"
	AlwaysOverwrite ConflictResolution = "AlwaysOverwrite"
)

// DeleteType decides what happens to a deleted item or folder.
type DeleteType string

// Delete types.
const (
	HardDelete         DeleteType = "HardDelete"
	SoftDelete         DeleteType = "SoftDelete"
	MoveToDeletedItems DeleteType = "MoveToDeletedItems"
)

// AffectedTaskOccurrences selects which occurrences of a recurring task a
// delete applies to.
type AffectedTaskOccurrences string

// Affected occurrence modes.
const (
	AllOccurrences          AffectedTaskOccurrences = "AllOccurrences"
	SpecifiedOccurrenceOnly AffectedTaskOccurrences = "SpecifiedOccurrenceOnly"
)

// BaseShape is the base property set of a response shape.
type BaseShape string

// Base shapes.
const (
	IDOnly        BaseShape = "IdOnly"
	DefaultShape  BaseShape = "Default"
	AllProperties BaseShape = "AllProperties"
)

// Traversal is the search depth of FindItem and FindFolder.
type Traversal string

// Traversals.
const (
	Shallow     Traversal = "Shallow"
	Deep        Traversal = "Deep"
	SoftDeleted Traversal = "SoftDeleted"
	Associated  Traversal = "Associated"
)

// TaskStatus is the status of a task.
type TaskStatus string

// Task statuses.
const (
	TaskNotStarted      TaskStatus = "NotStarted"
	TaskInProgress      TaskStatus = "InProgress"
	TaskCompleted       TaskStatus = "Completed"
	TaskWaitingOnOthers TaskStatus = "WaitingOnOthers"
	TaskDeferred        TaskStatus = "Deferred"
)

// ResponseType is an attendee's answer to a meeting request.
type ResponseType string

// Response types.
const (
	ResponseUnknown            ResponseType = "Unknown"
	ResponseOrganizer          ResponseType = "Organizer"
	ResponseTentative          ResponseType = "Tentative"
	ResponseAccept             ResponseType = "Accept"
	ResponseDecline            ResponseType = "Decline"
	ResponseNoResponseReceived ResponseType = "NoResponseReceived"
)

// FreeBusyStatus is the legacy free/busy status of a calendar item.
type FreeBusyStatus string

// Free/busy statuses.
const (
	FreeBusyFree      FreeBusyStatus = "Free"
	FreeBusyTentative FreeBusyStatus = "Tentative"
	FreeBusyBusy      FreeBusyStatus = "Busy"
	FreeBusyOOF       FreeBusyStatus = "OOF"
	FreeBusyNoData    FreeBusyStatus = "NoData"
)

// CalendarItemType distinguishes single, occurrence, exception and master
// calendar items.
type CalendarItemType string

// Calendar item types.
const (
	CalendarSingle          CalendarItemType = "Single"
	CalendarOccurrence      CalendarItemType = "Occurrence"
	CalendarException       CalendarItemType = "Exception"
	CalendarRecurringMaster CalendarItemType = "RecurringMaster"
)

// EventType is the kind of a pull notification.
type EventType string

// Event types.
const (
	CopiedEvent          EventType = "CopiedEvent"
	CreatedEvent         EventType = "CreatedEvent"
	DeletedEvent         EventType = "DeletedEvent"
	ModifiedEvent        EventType = "ModifiedEvent"
	MovedEvent           EventType = "MovedEvent"
	NewMailEvent         EventType = "NewMailEvent"
	FreeBusyChangedEvent EventType = "FreeBusyChangedEvent"
	StatusEvent          EventType = "StatusEvent"
)

// SearchScope restricts where ResolveNames looks.
type SearchScope string

// Search scopes.
const (
	ScopeActiveDirectory         SearchScope = "ActiveDirectory"
	ScopeActiveDirectoryContacts SearchScope = "ActiveDirectoryContacts"
	ScopeContacts                SearchScope = "Contacts"
	ScopeContactsActiveDirectory SearchScope = "ContactsActiveDirectory"
)

// ContainmentMode is the match mode of a Contains restriction.
type ContainmentMode string

// Containment modes.
const (
	FullString    ContainmentMode = "FullString"
	Prefixed      ContainmentMode = "Prefixed"
	Substring     ContainmentMode = "Substring"
	PrefixOnWords ContainmentMode = "PrefixOnWords"
	ExactPhrase   ContainmentMode = "ExactPhrase"
)

// ContainmentComparison is the comparison of a Contains restriction.
type ContainmentComparison string

// Containment comparisons.
const (
	Exact                               ContainmentComparison = "Exact"
	IgnoreCase                          ContainmentComparison = "IgnoreCase"
	IgnoreNonSpacingCharacters          ContainmentComparison = "IgnoreNonSpacingCharacters"
	Loose                               ContainmentComparison = "Loose"
	IgnoreCaseAndNonSpacingCharacters   ContainmentComparison = "IgnoreCaseAndNonSpacingCharacters"
	LooseAndIgnoreCase                  ContainmentComparison = "LooseAndIgnoreCase"
	LooseAndIgnoreNonSpace              ContainmentComparison = "LooseAndIgnoreNonSpace"
	LooseAndIgnoreCaseAndIgnoreNonSpace ContainmentComparison = "LooseAndIgnoreCaseAndIgnoreNonSpace"
)

// SortDirection orders FindItem results.
type SortDirection string

// Sort directions.
const (
	Ascending  SortDirection = "Ascending"
	Descending SortDirection = "Descending"
)

// PagingBasePoint is where an indexed page view starts counting.
type PagingBasePoint string

// Base points.
const (
	PagingBeginning PagingBasePoint = "Beginning"
	PagingEnd       PagingBasePoint = "End"
)

// DelegatePermissionLevel is a delegate's access to one folder.
type DelegatePermissionLevel string

// Permission levels.
const (
	PermissionNone     DelegatePermissionLevel = "None"
	PermissionReviewer DelegatePermissionLevel = "Reviewer"
	PermissionAuthor   DelegatePermissionLevel = "Author"
	PermissionEditor   DelegatePermissionLevel = "Editor"
	PermissionCustom   DelegatePermissionLevel = "Custom"
)

// MeetingRequestsDeliveryScope decides who receives meeting requests when a
// mailbox has delegates.
type MeetingRequestsDeliveryScope string

// Delivery scopes.
const (
	DelegatesOnly                   MeetingRequestsDeliveryScope = "DelegatesOnly"
	DelegatesAndMe                  MeetingRequestsDeliveryScope = "DelegatesAndMe"
	DelegatesAndSendInformationToMe MeetingRequestsDeliveryScope = "DelegatesAndSendInformationToMe"
	NoForward                       MeetingRequestsDeliveryScope = "NoForward"
)

// ImpersonationKind selects the ConnectingSID child used for impersonation.
type ImpersonationKind string

// Impersonation kinds.
const (
	ImpersonatePrincipalName      ImpersonationKind = "PrincipalName"
	ImpersonateSID                ImpersonationKind = "SID"
	ImpersonatePrimarySMTPAddress ImpersonationKind = "PrimarySmtpAddress"
	ImpersonateSMTPAddress        ImpersonationKind = "SmtpAddress"
)
