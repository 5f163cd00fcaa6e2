package ews

// Element sequences of the Exchange 2013 types schema. Properties inserts
// new elements at their position in these lists so that CreateItem payloads
// validate.

var itemSequence = []string{
	"MimeContent", "ItemId", "ParentFolderId", "ItemClass", "Subject",
	"Sensitivity", "Body", "Attachments", "DateTimeReceived", "Size",
	"Categories", "Importance", "InReplyTo", "IsSubmitted", "IsDraft",
	"IsFromMe", "IsResend", "IsUnmodified", "InternetMessageHeaders",
	"DateTimeSent", "DateTimeCreated", "ResponseObjects", "ReminderDueBy",
	"ReminderIsSet", "ReminderNextTime", "ReminderMinutesBeforeStart",
	"DisplayCc", "DisplayTo", "HasAttachments", "ExtendedProperty", "Culture",
	"EffectiveRights", "LastModifiedName", "LastModifiedTime", "IsAssociated",
	"WebClientReadFormQueryString", "WebClientEditFormQueryString",
	"ConversationId", "UniqueBody", "Flag", "StoreEntryId", "InstanceKey",
	"NormalizedBody", "EntityExtractionResult", "PolicyTag", "ArchiveTag",
	"RetentionDate", "Preview", "RightsManagementLicenseData",
	"PredictedActionReasons", "IsClutter", "TextBody", "IconIndex",
}

var messageSequence = concat(itemSequence, []string{
	"Sender", "ToRecipients", "CcRecipients", "BccRecipients",
	"IsReadReceiptRequested", "IsDeliveryReceiptRequested",
	"ConversationIndex", "ConversationTopic", "From", "InternetMessageId",
	"IsRead", "IsResponseRequested", "References", "ReplyTo", "ReceivedBy",
	"ReceivedRepresenting", "ApprovalRequestData", "VotingInformation",
	"ReminderMessageData",
})

var taskSequence = concat(itemSequence, []string{
	"ActualWork", "AssignedTime", "BillingInformation", "ChangeCount",
	"Companies", "CompleteDate", "Contacts", "DelegationState", "Delegator",
	"DueDate", "IsAssignmentEditable", "IsComplete", "IsRecurring",
	"IsTeamTask", "Mileage", "Owner", "PercentComplete", "Recurrence",
	"StartDate", "Status", "StatusDescription", "TotalWork",
})

var contactSequence = concat(itemSequence, []string{
	"FileAs", "FileAsMapping", "DisplayName", "GivenName", "Initials",
	"MiddleName", "Nickname", "CompleteName", "CompanyName", "EmailAddresses",
	"AbchEmailAddresses", "PhysicalAddresses", "PhoneNumbers",
	"AssistantName", "Birthday", "BusinessHomePage", "Children", "Companies",
	"ContactSource", "Department", "Generation", "ImAddresses", "JobTitle",
	"Manager", "Mileage", "OfficeLocation", "PostalAddressIndex",
	"Profession", "SpouseName", "Surname", "WeddingAnniversary", "HasPicture",
	"PhoneticFullName", "PhoneticFirstName", "PhoneticLastName", "Alias",
	"Notes", "Photo", "UserSMIMECertificate", "MSExchangeCertificate",
	"DirectoryId", "ManagerMailbox", "DirectReports",
})

var calendarSequence = concat(itemSequence, []string{
	"UID", "RecurrenceId", "DateTimeStamp", "Start", "End", "OriginalStart",
	"IsAllDayEvent", "LegacyFreeBusyStatus", "Location", "When", "IsMeeting",
	"IsCancelled", "IsRecurring", "MeetingRequestWasSent",
	"IsResponseRequested", "CalendarItemType", "MyResponseType", "Organizer",
	"RequiredAttendees", "OptionalAttendees", "Resources",
	"ConflictingMeetingCount", "AdjacentMeetingCount", "ConflictingMeetings",
	"AdjacentMeetings", "Duration", "TimeZone", "AppointmentReplyTime",
	"AppointmentSequenceNumber", "AppointmentState", "Recurrence",
	"FirstOccurrence", "LastOccurrence", "ModifiedOccurrences",
	"DeletedOccurrences", "MeetingTimeZone", "StartTimeZone", "EndTimeZone",
	"ConferenceType", "AllowNewTimeProposal", "IsOnlineMeeting",
	"MeetingWorkspaceUrl", "NetShowUrl", "EnhancedLocation",
	"StartWallClock", "EndWallClock", "StartTimeZoneId", "EndTimeZoneId",
	"IntendedFreeBusyStatus", "JoinOnlineMeetingUrl", "OnlineMeetingSettings",
	"IsOrganizer",
})

var folderSequence = []string{
	"FolderId", "ParentFolderId", "FolderClass", "DisplayName", "TotalCount",
	"ChildFolderCount", "ExtendedProperty", "ManagedFolderInformation",
	"EffectiveRights", "DistinguishedFolderId", "PolicyTag", "ArchiveTag",
	"PermissionSet", "UnreadCount",
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
