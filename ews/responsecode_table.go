package ews

// Response codes reported by Exchange in ResponseMessage elements and SOAP
// fault details, in the order of the ResponseCodeType enumeration of the
// published messages.xsd schema. The Go identifier equals the wire name.
// New codes go at the end so the names table keeps its order.
const (
	NoError ResponseCode = iota
	ErrorAccessDenied
	ErrorAccessModeSpecified
	ErrorAccountDisabled
	ErrorAddDelegatesFailed
	ErrorAddressSpaceNotFound
	ErrorADOperation
	ErrorADSessionFilter
	ErrorADUnavailable
	ErrorAffectedTaskOccurrencesRequired
	ErrorApplyConversationActionFailed
	ErrorArchiveFolderPathCreation
	ErrorArchiveMailboxNotEnabled
	ErrorArchiveMailboxServiceDiscoveryFailed
	ErrorAttachmentNestLevelLimitExceeded
	ErrorAttachmentSizeLimitExceeded
	ErrorAutoDiscoverFailed
	ErrorAvailabilityConfigNotFound
	ErrorBatchProcessingStopped
	ErrorCalendarCannotMoveOrCopyOccurrence
	ErrorCalendarCannotUpdateDeletedItem
	ErrorCalendarCannotUseIdForOccurrenceId
	ErrorCalendarCannotUseIdForRecurringMasterId
	ErrorCalendarDurationIsTooLong
	ErrorCalendarEndDateIsEarlierThanStartDate
	ErrorCalendarFolderIsInvalidForCalendarView
	ErrorCalendarInvalidAttributeValue
	ErrorCalendarInvalidDayForTimeChangePattern
	ErrorCalendarInvalidDayForWeeklyRecurrence
	ErrorCalendarInvalidPropertyState
	ErrorCalendarInvalidPropertyValue
	ErrorCalendarInvalidRecurrence
	ErrorCalendarInvalidTimeZone
	ErrorCalendarIsCancelledForAccept
	ErrorCalendarIsCancelledForDecline
	ErrorCalendarIsCancelledForRemove
	ErrorCalendarIsCancelledForTentative
	ErrorCalendarIsDelegatedForAccept
	ErrorCalendarIsDelegatedForDecline
	ErrorCalendarIsDelegatedForRemove
	ErrorCalendarIsDelegatedForTentative
	ErrorCalendarIsNotOrganizer
	ErrorCalendarIsOrganizerForAccept
	ErrorCalendarIsOrganizerForDecline
	ErrorCalendarIsOrganizerForRemove
	ErrorCalendarIsOrganizerForTentative
	ErrorCalendarMeetingRequestIsOutOfDate
	ErrorCalendarOccurrenceIndexIsOutOfRecurrenceRange
	ErrorCalendarOccurrenceIsDeletedFromRecurrence
	ErrorCalendarOutOfRange
	ErrorCalendarViewRangeTooBig
	ErrorCallerIsInvalidADAccount
	ErrorCannotArchiveCalendarContactTaskFolderException
	ErrorCannotArchiveItemsInArchiveMailbox
	ErrorCannotArchiveItemsInPublicFolders
	ErrorCannotCreateCalendarItemInNonCalendarFolder
	ErrorCannotCreateContactInNonContactFolder
	ErrorCannotCreatePostItemInNonMailFolder
	ErrorCannotCreateTaskInNonTaskFolder
	ErrorCannotDeleteObject
	ErrorCannotDeleteTaskOccurrence
	ErrorCannotDisableMandatoryExtension
	ErrorCannotEmptyFolder
	ErrorCannotGetExternalEcpUrl
	ErrorCannotGetSourceFolderPath
	ErrorCannotOpenFileAttachment
	ErrorCannotSetCalendarPermissionOnNonCalendarFolder
	ErrorCannotSetNonCalendarPermissionOnCalendarFolder
	ErrorCannotSetPermissionUnknownEntries
	ErrorCannotSpecifySearchFolderAsSourceFolder
	ErrorCannotUseFolderIdForItemId
	ErrorCannotUseItemIdForFolderId
	ErrorChangeKeyRequired
	ErrorChangeKeyRequiredForWriteOperations
	ErrorClientDisconnected
	ErrorClientIntentInvalidStateDefinition
	ErrorClientIntentNotFound
	ErrorConnectionFailed
	ErrorContainsFilterWrongType
	ErrorContentConversionFailed
	ErrorContentIndexingNotEnabled
	ErrorCorruptData
	ErrorCreateItemAccessDenied
	ErrorCreateManagedFolderPartialCompletion
	ErrorCreateSubfolderAccessDenied
	ErrorCrossMailboxMoveCopy
	ErrorCrossSiteRequest
	ErrorDataSizeLimitExceeded
	ErrorDataSourceOperation
	ErrorDelegateAlreadyExists
	ErrorDelegateCannotAddOwner
	ErrorDelegateMissingConfiguration
	ErrorDelegateNoUser
	ErrorDelegateValidationFailed
	ErrorDeleteDistinguishedFolder
	ErrorDeleteItemsFailed
	ErrorDeleteUnifiedMessagingPromptFailed
	ErrorDiscoverySearchesDisabled
	ErrorDistinguishedUserNotSupported
	ErrorDistributionListMemberNotExist
	ErrorDuplicateInputFolderNames
	ErrorDuplicateSOAPHeader
	ErrorDuplicateUserIdsSpecified
	ErrorEmailAddressMismatch
	ErrorEventNotFound
	ErrorExceededConnectionCount
	ErrorExceededFindCountLimit
	ErrorExceededSubscriptionCount
	ErrorExpiredSubscription
	ErrorExtensionNotFound
	ErrorFolderCorrupt
	ErrorFolderExists
	ErrorFolderNotFound
	ErrorFolderPropertRequestFailed
	ErrorFolderSave
	ErrorFolderSaveFailed
	ErrorFolderSavePropertyError
	ErrorFreeBusyDLLimitReached
	ErrorFreeBusyGenerationFailed
	ErrorGetServerSecurityDescriptorFailed
	ErrorImContactLimitReached
	ErrorImGroupDisplayNameAlreadyExists
	ErrorImGroupLimitReached
	ErrorImpersonateUserDenied
	ErrorImpersonationDenied
	ErrorImpersonationFailed
	ErrorIncorrectSchemaVersion
	ErrorIncorrectUpdatePropertyCount
	ErrorIndividualMailboxLimitReached
	ErrorInsufficientResources
	ErrorInternalServerError
	ErrorInternalServerTransientError
	ErrorInvalidAccessLevel
	ErrorInvalidArgument
	ErrorInvalidAttachmentId
	ErrorInvalidAttachmentSubfilter
	ErrorInvalidAttachmentSubfilterTextFilter
	ErrorInvalidAuthorizationContext
	ErrorInvalidChangeKey
	ErrorInvalidClientAccessTokenRequest
	ErrorInvalidClientSecurityContext
	ErrorInvalidCompleteDate
	ErrorInvalidContactEmailAddress
	ErrorInvalidContactEmailIndex
	ErrorInvalidCrossForestCredentials
	ErrorInvalidDelegatePermission
	ErrorInvalidDelegateUserId
	ErrorInvalidExchangeImpersonationHeaderData
	ErrorInvalidExcludesRestriction
	ErrorInvalidExpressionTypeForSubFilter
	ErrorInvalidExtendedProperty
	ErrorInvalidExtendedPropertyValue
	ErrorInvalidExternalSharingInitiator
	ErrorInvalidExternalSharingSubscriber
	ErrorInvalidFederatedOrganizationId
	ErrorInvalidFolderId
	ErrorInvalidFolderTypeForOperation
	ErrorInvalidFractionalPagingParameters
	ErrorInvalidFreeBusyViewType
	ErrorInvalidGetSharingFolderRequest
	ErrorInvalidGetSharingMetadataRequest
	ErrorInvalidId
	ErrorInvalidIdEmpty
	ErrorInvalidIdMalformed
	ErrorInvalidIdMalformedEwsLegacyIdFormat
	ErrorInvalidIdMonikerTooLong
	ErrorInvalidIdNotAnItemAttachmentId
	ErrorInvalidIdReturnedByResolveNames
	ErrorInvalidIdStoreObjectIdTooLong
	ErrorInvalidIdTooManyAttachmentLevels
	ErrorInvalidIdXml
	ErrorInvalidImContactId
	ErrorInvalidImDistributionGroupSmtpAddress
	ErrorInvalidImGroupId
	ErrorInvalidIndexedPagingParameters
	ErrorInvalidInternetHeaderChildNodes
	ErrorInvalidItemForOperationAcceptItem
	ErrorInvalidItemForOperationArchiveItem
	ErrorInvalidItemForOperationCancelItem
	ErrorInvalidItemForOperationCreateItem
	ErrorInvalidItemForOperationCreateItemAttachment
	ErrorInvalidItemForOperationDeclineItem
	ErrorInvalidItemForOperationExpandDL
	ErrorInvalidItemForOperationRemoveItem
	ErrorInvalidItemForOperationSendItem
	ErrorInvalidItemForOperationTentative
	ErrorInvalidLikeRequest
	ErrorInvalidLogonType
	ErrorInvalidMailbox
	ErrorInvalidManagedFolderProperty
	ErrorInvalidManagedFolderQuota
	ErrorInvalidManagedFolderSize
	ErrorInvalidManagementRoleHeader
	ErrorInvalidMergedFreeBusyInterval
	ErrorInvalidNameForNameResolution
	ErrorInvalidNetworkServiceContext
	ErrorInvalidOofParameter
	ErrorInvalidOperation
	ErrorInvalidOrganizationRelationshipForFreeBusy
	ErrorInvalidPagingMaxRows
	ErrorInvalidParentFolder
	ErrorInvalidPercentCompleteValue
	ErrorInvalidPermissionSettings
	ErrorInvalidPhoneCallId
	ErrorInvalidPhoneNumber
	ErrorInvalidPhotoSize
	ErrorInvalidPropertyAppend
	ErrorInvalidPropertyDelete
	ErrorInvalidPropertyForExists
	ErrorInvalidPropertyForOperation
	ErrorInvalidPropertyRequest
	ErrorInvalidPropertySet
	ErrorInvalidPropertyUpdateSentMessage
	ErrorInvalidProxySecurityContext
	ErrorInvalidPullSubscriptionId
	ErrorInvalidPushSubscriptionUrl
	ErrorInvalidRecipients
	ErrorInvalidRecipientSubfilter
	ErrorInvalidRecipientSubfilterComparison
	ErrorInvalidRecipientSubfilterOrder
	ErrorInvalidRecipientSubfilterTextFilter
	ErrorInvalidReferenceItem
	ErrorInvalidRequest
	ErrorInvalidRestriction
	ErrorInvalidRetentionTagIdGuid
	ErrorInvalidRetentionTagInheritance
	ErrorInvalidRetentionTagInvisible
	ErrorInvalidRetentionTagTypeMismatch
	ErrorInvalidRoutingType
	ErrorInvalidScheduledOofDuration
	ErrorInvalidSchemaVersionForMailboxVersion
	ErrorInvalidSearchQuerySyntax
	ErrorInvalidSecurityDescriptor
	ErrorInvalidSendItemSaveSettings
	ErrorInvalidSerializedAccessToken
	ErrorInvalidServerVersion
	ErrorInvalidSharingData
	ErrorInvalidSharingMessage
	ErrorInvalidSid
	ErrorInvalidSIPUri
	ErrorInvalidSmtpAddress
	ErrorInvalidSubfilterType
	ErrorInvalidSubfilterTypeNotAttendeeType
	ErrorInvalidSubfilterTypeNotRecipientType
	ErrorInvalidSubscription
	ErrorInvalidSubscriptionRequest
	ErrorInvalidSyncStateData
	ErrorInvalidTimeInterval
	ErrorInvalidUserInfo
	ErrorInvalidUserOofSettings
	ErrorInvalidUserPrincipalName
	ErrorInvalidUserSid
	ErrorInvalidUserSidMissingUPN
	ErrorInvalidValueForProperty
	ErrorInvalidWatermark
	ErrorIPGatewayNotFound
	ErrorIrresolvableConflict
	ErrorItemCorrupt
	ErrorItemNotFound
	ErrorItemPropertyRequestFailed
	ErrorItemSave
	ErrorItemSavePropertyError
	ErrorLegacyMailboxFreeBusyViewTypeNotMerged
	ErrorLocalServerObjectNotFound
	ErrorLocationServicesDisabled
	ErrorLocationServicesInvalidRequest
	ErrorLocationServicesRequestFailed
	ErrorLocationServicesRequestTimedOut
	ErrorLogonAsNetworkServiceFailed
	ErrorMailboxConfiguration
	ErrorMailboxDataArrayEmpty
	ErrorMailboxDataArrayTooBig
	ErrorMailboxFailover
	ErrorMailboxHoldNotFound
	ErrorMailboxLogonFailed
	ErrorMailboxMoveInProgress
	ErrorMailboxScopeNotAllowedWithoutQueryString
	ErrorMailboxStoreUnavailable
	ErrorMailRecipientNotFound
	ErrorMailTipsDisabled
	ErrorManagedFolderAlreadyExists
	ErrorManagedFolderNotFound
	ErrorManagedFoldersRootFailure
	ErrorMeetingSuggestionGenerationFailed
	ErrorMessageDispositionRequired
	ErrorMessagePerFolderCountReceiveQuotaExceeded
	ErrorMessageSizeExceeded
	ErrorMessageTrackingNoSuchDomain
	ErrorMessageTrackingPermanentError
	ErrorMessageTrackingTransientError
	ErrorMimeContentConversionFailed
	ErrorMimeContentInvalid
	ErrorMimeContentInvalidBase64String
	ErrorMissedNotificationEvents
	ErrorMissingArgument
	ErrorMissingEmailAddress
	ErrorMissingEmailAddressForManagedFolder
	ErrorMissingInformationEmailAddress
	ErrorMissingInformationReferenceItemId
	ErrorMissingInformationSharingFolderId
	ErrorMissingItemForCreateItemAttachment
	ErrorMissingManagedFolderId
	ErrorMissingRecipients
	ErrorMissingUserIdInformation
	ErrorMoreThanOneAccessModeSpecified
	ErrorMoveCopyFailed
	ErrorMoveDistinguishedFolder
	ErrorMultiLegacyMailboxAccess
	ErrorNameResolutionMultipleResults
	ErrorNameResolutionNoMailbox
	ErrorNameResolutionNoResults
	ErrorNewEventStreamConnectionOpened
	ErrorNoApplicableProxyCASServersAvailable
	ErrorNoCalendar
	ErrorNoDestinationCASDueToKerberosRequirements
	ErrorNoDestinationCASDueToSSLRequirements
	ErrorNoDestinationCASDueToVersionMismatch
	ErrorNoFolderClassOverride
	ErrorNoFreeBusyAccess
	ErrorNonExistentMailbox
	ErrorNonPrimarySmtpAddress
	ErrorNoPropertyTagForCustomProperties
	ErrorNoPublicFolderReplicaAvailable
	ErrorNoPublicFolderServerAvailable
	ErrorNoRespondingCASInDestinationSite
	ErrorNoSpeechDetected
	ErrorNotAcceptable
	ErrorNotAllowedExternalSharingByPolicy
	ErrorNotDelegate
	ErrorNotEnoughMemory
	ErrorNotSupportedSharingMessage
	ErrorObjectTypeChanged
	ErrorOccurrenceCrossingBoundary
	ErrorOccurrenceTimeSpanTooBig
	ErrorOperationNotAllowedWithPublicFolderRoot
	ErrorOrganizationNotFederated
	ErrorParentFolderIdRequired
	ErrorParentFolderNotFound
	ErrorPasswordChangeRequired
	ErrorPasswordExpired
	ErrorPermissionNotAllowedByPolicy
	ErrorPhoneNumberNotDialable
	ErrorPromptPublishingOperationFailed
	ErrorPropertyUpdate
	ErrorPropertyValidationFailure
	ErrorProxiedSubscriptionCallFailure
	ErrorProxyCallFailed
	ErrorProxyGroupSidLimitExceeded
	ErrorProxyRequestNotAllowed
	ErrorProxyRequestProcessingFailed
	ErrorProxyServiceDiscoveryFailed
	ErrorProxyTokenExpired
	ErrorPublicFolderMailboxDiscoveryFailed
	ErrorPublicFolderOperationFailed
	ErrorPublicFolderRequestProcessingFailed
	ErrorPublicFolderServerNotFound
	ErrorPublicFolderSyncException
	ErrorQueryFilterTooLong
	ErrorQuotaExceeded
	ErrorReadEventsFailed
	ErrorReadReceiptNotPending
	ErrorRecipientNotFound
	ErrorRecognizerNotInstalled
	ErrorRecurrenceEndDateTooBig
	ErrorRecurrenceHasNoOccurrence
	ErrorRemoteUserMailboxMustSpecifyExplicitLocalMailbox
	ErrorRemoveDelegatesFailed
	ErrorRequestAborted
	ErrorRequestStreamTooBig
	ErrorRequiredPropertyMissing
	ErrorResolveNamesInvalidFolderType
	ErrorResolveNamesOnlyOneContactsFolderAllowed
	ErrorResponseSchemaValidation
	ErrorRestrictionTooComplex
	ErrorRestrictionTooLong
	ErrorResultSetTooBig
	ErrorSavedItemFolderNotFound
	ErrorSchemaValidation
	ErrorSearchFolderNotInitialized
	ErrorSendAsDenied
	ErrorSendMeetingCancellationsRequired
	ErrorSendMeetingInvitationsOrCancellationsRequired
	ErrorSendMeetingInvitationsRequired
	ErrorSentMeetingRequestUpdate
	ErrorSentTaskRequestUpdate
	ErrorServerBusy
	ErrorServiceDiscoveryFailed
	ErrorSharingNoExternalEwsAvailable
	ErrorSharingSynchronizationFailed
	ErrorSpeechGrammarError
	ErrorStaleObject
	ErrorSubmissionQuotaExceeded
	ErrorSubscriptionAccessDenied
	ErrorSubscriptionDelegateAccessNotSupported
	ErrorSubscriptionNotFound
	ErrorSubscriptionUnsubscribed
	ErrorSyncFolderNotFound
	ErrorTeamMailboxActiveToPendingDelete
	ErrorTeamMailboxErrorUnknown
	ErrorTeamMailboxFailedSendingNotifications
	ErrorTeamMailboxNotAuthorizedOwner
	ErrorTeamMailboxNotFound
	ErrorTeamMailboxNotLinkedToSharePoint
	ErrorTeamMailboxUrlValidationFailed
	ErrorTimeIntervalTooBig
	ErrorTimeoutExpired
	ErrorTimeZone
	ErrorToFolderNotFound
	ErrorTokenSerializationDenied
	ErrorTooManyObjectsOpened
	ErrorUMServerUnavailable
	ErrorUnableToGetUserOofSettings
	ErrorUnableToRemoveImContactFromGroup
	ErrorUnifiedMessagingDialPlanNotFound
	ErrorUnifiedMessagingPromptNotFound
	ErrorUnifiedMessagingReportDataNotFound
	ErrorUnifiedMessagingRequestFailed
	ErrorUnifiedMessagingServerNotFound
	ErrorUnsupportedCulture
	ErrorUnsupportedMapiPropertyType
	ErrorUnsupportedMimeConversion
	ErrorUnsupportedPathForQuery
	ErrorUnsupportedPathForSortGroup
	ErrorUnsupportedPropertyDefinition
	ErrorUnsupportedQueryFilter
	ErrorUnsupportedRecurrence
	ErrorUnsupportedSubFilter
	ErrorUnsupportedTypeForConversion
	ErrorUpdateDelegatesFailed
	ErrorUpdatePropertyMismatch
	ErrorUserNotUnifiedMessagingEnabled
	ErrorUserWithoutFederatedProxyAddress
	ErrorValueOutOfRange
	ErrorVirusDetected
	ErrorVirusMessageDeleted
	ErrorVoiceMailNotImplemented
	ErrorWeatherServiceDisabled
	ErrorWebRequestInInvalidState
	ErrorWin32InteropError
	ErrorWorkingHoursSaveFailed
	ErrorWorkingHoursXmlMalformed
	ErrorWrongServerVersion
	ErrorWrongServerVersionDelegate
)

var responseCodeNames = [...]string{
	NoError:                                               "NoError",
	ErrorAccessDenied:                                     "ErrorAccessDenied",
	ErrorAccessModeSpecified:                              "ErrorAccessModeSpecified",
	ErrorAccountDisabled:                                  "ErrorAccountDisabled",
	ErrorAddDelegatesFailed:                               "ErrorAddDelegatesFailed",
	ErrorAddressSpaceNotFound:                             "ErrorAddressSpaceNotFound",
	ErrorADOperation:                                      "ErrorADOperation",
	ErrorADSessionFilter:                                  "ErrorADSessionFilter",
	ErrorADUnavailable:                                    "ErrorADUnavailable",
	ErrorAffectedTaskOccurrencesRequired:                  "ErrorAffectedTaskOccurrencesRequired",
	ErrorApplyConversationActionFailed:                    "ErrorApplyConversationActionFailed",
	ErrorArchiveFolderPathCreation:                        "ErrorArchiveFolderPathCreation",
	ErrorArchiveMailboxNotEnabled:                         "ErrorArchiveMailboxNotEnabled",
	ErrorArchiveMailboxServiceDiscoveryFailed:             "ErrorArchiveMailboxServiceDiscoveryFailed",
	ErrorAttachmentNestLevelLimitExceeded:                 "ErrorAttachmentNestLevelLimitExceeded",
	ErrorAttachmentSizeLimitExceeded:                      "ErrorAttachmentSizeLimitExceeded",
	ErrorAutoDiscoverFailed:                               "ErrorAutoDiscoverFailed",
	ErrorAvailabilityConfigNotFound:                       "ErrorAvailabilityConfigNotFound",
	ErrorBatchProcessingStopped:                           "ErrorBatchProcessingStopped",
	ErrorCalendarCannotMoveOrCopyOccurrence:               "ErrorCalendarCannotMoveOrCopyOccurrence",
	ErrorCalendarCannotUpdateDeletedItem:                  "ErrorCalendarCannotUpdateDeletedItem",
	ErrorCalendarCannotUseIdForOccurrenceId:               "ErrorCalendarCannotUseIdForOccurrenceId",
	ErrorCalendarCannotUseIdForRecurringMasterId:          "ErrorCalendarCannotUseIdForRecurringMasterId",
	ErrorCalendarDurationIsTooLong:                        "ErrorCalendarDurationIsTooLong",
	ErrorCalendarEndDateIsEarlierThanStartDate:            "ErrorCalendarEndDateIsEarlierThanStartDate",
	ErrorCalendarFolderIsInvalidForCalendarView:           "ErrorCalendarFolderIsInvalidForCalendarView",
	ErrorCalendarInvalidAttributeValue:                    "ErrorCalendarInvalidAttributeValue",
	ErrorCalendarInvalidDayForTimeChangePattern:           "ErrorCalendarInvalidDayForTimeChangePattern",
	ErrorCalendarInvalidDayForWeeklyRecurrence:            "ErrorCalendarInvalidDayForWeeklyRecurrence",
	ErrorCalendarInvalidPropertyState:                     "ErrorCalendarInvalidPropertyState",
	ErrorCalendarInvalidPropertyValue:                     "ErrorCalendarInvalidPropertyValue",
	ErrorCalendarInvalidRecurrence:                        "ErrorCalendarInvalidRecurrence",
	ErrorCalendarInvalidTimeZone:                          "ErrorCalendarInvalidTimeZone",
	ErrorCalendarIsCancelledForAccept:                     "ErrorCalendarIsCancelledForAccept",
	ErrorCalendarIsCancelledForDecline:                    "ErrorCalendarIsCancelledForDecline",
	ErrorCalendarIsCancelledForRemove:                     "ErrorCalendarIsCancelledForRemove",
	ErrorCalendarIsCancelledForTentative:                  "ErrorCalendarIsCancelledForTentative",
	ErrorCalendarIsDelegatedForAccept:                     "ErrorCalendarIsDelegatedForAccept",
	ErrorCalendarIsDelegatedForDecline:                    "ErrorCalendarIsDelegatedForDecline",
	ErrorCalendarIsDelegatedForRemove:                     "ErrorCalendarIsDelegatedForRemove",
	ErrorCalendarIsDelegatedForTentative:                  "ErrorCalendarIsDelegatedForTentative",
	ErrorCalendarIsNotOrganizer:                           "ErrorCalendarIsNotOrganizer",
	ErrorCalendarIsOrganizerForAccept:                     "ErrorCalendarIsOrganizerForAccept",
	ErrorCalendarIsOrganizerForDecline:                    "ErrorCalendarIsOrganizerForDecline",
	ErrorCalendarIsOrganizerForRemove:                     "ErrorCalendarIsOrganizerForRemove",
	ErrorCalendarIsOrganizerForTentative:                  "ErrorCalendarIsOrganizerForTentative",
	ErrorCalendarMeetingRequestIsOutOfDate:                "ErrorCalendarMeetingRequestIsOutOfDate",
	ErrorCalendarOccurrenceIndexIsOutOfRecurrenceRange:    "ErrorCalendarOccurrenceIndexIsOutOfRecurrenceRange",
	ErrorCalendarOccurrenceIsDeletedFromRecurrence:        "ErrorCalendarOccurrenceIsDeletedFromRecurrence",
	ErrorCalendarOutOfRange:                               "ErrorCalendarOutOfRange",
	ErrorCalendarViewRangeTooBig:                          "ErrorCalendarViewRangeTooBig",
	ErrorCallerIsInvalidADAccount:                         "ErrorCallerIsInvalidADAccount",
	ErrorCannotArchiveCalendarContactTaskFolderException:  "ErrorCannotArchiveCalendarContactTaskFolderException",
	ErrorCannotArchiveItemsInArchiveMailbox:               "ErrorCannotArchiveItemsInArchiveMailbox",
	ErrorCannotArchiveItemsInPublicFolders:                "ErrorCannotArchiveItemsInPublicFolders",
	ErrorCannotCreateCalendarItemInNonCalendarFolder:      "ErrorCannotCreateCalendarItemInNonCalendarFolder",
	ErrorCannotCreateContactInNonContactFolder:            "ErrorCannotCreateContactInNonContactFolder",
	ErrorCannotCreatePostItemInNonMailFolder:              "ErrorCannotCreatePostItemInNonMailFolder",
	ErrorCannotCreateTaskInNonTaskFolder:                  "ErrorCannotCreateTaskInNonTaskFolder",
	ErrorCannotDeleteObject:                               "ErrorCannotDeleteObject",
	ErrorCannotDeleteTaskOccurrence:                       "ErrorCannotDeleteTaskOccurrence",
	ErrorCannotDisableMandatoryExtension:                  "ErrorCannotDisableMandatoryExtension",
	ErrorCannotEmptyFolder:                                "ErrorCannotEmptyFolder",
	ErrorCannotGetExternalEcpUrl:                          "ErrorCannotGetExternalEcpUrl",
	ErrorCannotGetSourceFolderPath:                        "ErrorCannotGetSourceFolderPath",
	ErrorCannotOpenFileAttachment:                         "ErrorCannotOpenFileAttachment",
	ErrorCannotSetCalendarPermissionOnNonCalendarFolder:   "ErrorCannotSetCalendarPermissionOnNonCalendarFolder",
	ErrorCannotSetNonCalendarPermissionOnCalendarFolder:   "ErrorCannotSetNonCalendarPermissionOnCalendarFolder",
	ErrorCannotSetPermissionUnknownEntries:                "ErrorCannotSetPermissionUnknownEntries",
	ErrorCannotSpecifySearchFolderAsSourceFolder:          "ErrorCannotSpecifySearchFolderAsSourceFolder",
	ErrorCannotUseFolderIdForItemId:                       "ErrorCannotUseFolderIdForItemId",
	ErrorCannotUseItemIdForFolderId:                       "ErrorCannotUseItemIdForFolderId",
	ErrorChangeKeyRequired:                                "ErrorChangeKeyRequired",
	ErrorChangeKeyRequiredForWriteOperations:              "ErrorChangeKeyRequiredForWriteOperations",
	ErrorClientDisconnected:                               "ErrorClientDisconnected",
	ErrorClientIntentInvalidStateDefinition:               "ErrorClientIntentInvalidStateDefinition",
	ErrorClientIntentNotFound:                             "ErrorClientIntentNotFound",
	ErrorConnectionFailed:                                 "ErrorConnectionFailed",
	ErrorContainsFilterWrongType:                          "ErrorContainsFilterWrongType",
	ErrorContentConversionFailed:                          "ErrorContentConversionFailed",
	ErrorContentIndexingNotEnabled:                        "ErrorContentIndexingNotEnabled",
	ErrorCorruptData:                                      "ErrorCorruptData",
	ErrorCreateItemAccessDenied:                           "ErrorCreateItemAccessDenied",
	ErrorCreateManagedFolderPartialCompletion:             "ErrorCreateManagedFolderPartialCompletion",
	ErrorCreateSubfolderAccessDenied:                      "ErrorCreateSubfolderAccessDenied",
	ErrorCrossMailboxMoveCopy:                             "ErrorCrossMailboxMoveCopy",
	ErrorCrossSiteRequest:                                 "ErrorCrossSiteRequest",
	ErrorDataSizeLimitExceeded:                            "ErrorDataSizeLimitExceeded",
	ErrorDataSourceOperation:                              "ErrorDataSourceOperation",
	ErrorDelegateAlreadyExists:                            "ErrorDelegateAlreadyExists",
	ErrorDelegateCannotAddOwner:                           "ErrorDelegateCannotAddOwner",
	ErrorDelegateMissingConfiguration:                     "ErrorDelegateMissingConfiguration",
	ErrorDelegateNoUser:                                   "ErrorDelegateNoUser",
	ErrorDelegateValidationFailed:                         "ErrorDelegateValidationFailed",
	ErrorDeleteDistinguishedFolder:                        "ErrorDeleteDistinguishedFolder",
	ErrorDeleteItemsFailed:                                "ErrorDeleteItemsFailed",
	ErrorDeleteUnifiedMessagingPromptFailed:               "ErrorDeleteUnifiedMessagingPromptFailed",
	ErrorDiscoverySearchesDisabled:                        "ErrorDiscoverySearchesDisabled",
	ErrorDistinguishedUserNotSupported:                    "ErrorDistinguishedUserNotSupported",
	ErrorDistributionListMemberNotExist:                   "ErrorDistributionListMemberNotExist",
	ErrorDuplicateInputFolderNames:                        "ErrorDuplicateInputFolderNames",
	ErrorDuplicateSOAPHeader:                              "ErrorDuplicateSOAPHeader",
	ErrorDuplicateUserIdsSpecified:                        "ErrorDuplicateUserIdsSpecified",
	ErrorEmailAddressMismatch:                             "ErrorEmailAddressMismatch",
	ErrorEventNotFound:                                    "ErrorEventNotFound",
	ErrorExceededConnectionCount:                          "ErrorExceededConnectionCount",
	ErrorExceededFindCountLimit:                           "ErrorExceededFindCountLimit",
	ErrorExceededSubscriptionCount:                        "ErrorExceededSubscriptionCount",
	ErrorExpiredSubscription:                              "ErrorExpiredSubscription",
	ErrorExtensionNotFound:                                "ErrorExtensionNotFound",
	ErrorFolderCorrupt:                                    "ErrorFolderCorrupt",
	ErrorFolderExists:                                     "ErrorFolderExists",
	ErrorFolderNotFound:                                   "ErrorFolderNotFound",
	ErrorFolderPropertRequestFailed:                       "ErrorFolderPropertRequestFailed",
	ErrorFolderSave:                                       "ErrorFolderSave",
	ErrorFolderSaveFailed:                                 "ErrorFolderSaveFailed",
	ErrorFolderSavePropertyError:                          "ErrorFolderSavePropertyError",
	ErrorFreeBusyDLLimitReached:                           "ErrorFreeBusyDLLimitReached",
	ErrorFreeBusyGenerationFailed:                         "ErrorFreeBusyGenerationFailed",
	ErrorGetServerSecurityDescriptorFailed:                "ErrorGetServerSecurityDescriptorFailed",
	ErrorImContactLimitReached:                            "ErrorImContactLimitReached",
	ErrorImGroupDisplayNameAlreadyExists:                  "ErrorImGroupDisplayNameAlreadyExists",
	ErrorImGroupLimitReached:                              "ErrorImGroupLimitReached",
	ErrorImpersonateUserDenied:                            "ErrorImpersonateUserDenied",
	ErrorImpersonationDenied:                              "ErrorImpersonationDenied",
	ErrorImpersonationFailed:                              "ErrorImpersonationFailed",
	ErrorIncorrectSchemaVersion:                           "ErrorIncorrectSchemaVersion",
	ErrorIncorrectUpdatePropertyCount:                     "ErrorIncorrectUpdatePropertyCount",
	ErrorIndividualMailboxLimitReached:                    "ErrorIndividualMailboxLimitReached",
	ErrorInsufficientResources:                            "ErrorInsufficientResources",
	ErrorInternalServerError:                              "ErrorInternalServerError",
	ErrorInternalServerTransientError:                     "ErrorInternalServerTransientError",
	ErrorInvalidAccessLevel:                               "ErrorInvalidAccessLevel",
	ErrorInvalidArgument:                                  "ErrorInvalidArgument",
	ErrorInvalidAttachmentId:                              "ErrorInvalidAttachmentId",
	ErrorInvalidAttachmentSubfilter:                       "ErrorInvalidAttachmentSubfilter",
	ErrorInvalidAttachmentSubfilterTextFilter:             "ErrorInvalidAttachmentSubfilterTextFilter",
	ErrorInvalidAuthorizationContext:                      "ErrorInvalidAuthorizationContext",
	ErrorInvalidChangeKey:                                 "ErrorInvalidChangeKey",
	ErrorInvalidClientAccessTokenRequest:                  "ErrorInvalidClientAccessTokenRequest",
	ErrorInvalidClientSecurityContext:                     "ErrorInvalidClientSecurityContext",
	ErrorInvalidCompleteDate:                              "ErrorInvalidCompleteDate",
	ErrorInvalidContactEmailAddress:                       "ErrorInvalidContactEmailAddress",
	ErrorInvalidContactEmailIndex:                         "ErrorInvalidContactEmailIndex",
	ErrorInvalidCrossForestCredentials:                    "ErrorInvalidCrossForestCredentials",
	ErrorInvalidDelegatePermission:                        "ErrorInvalidDelegatePermission",
	ErrorInvalidDelegateUserId:                            "ErrorInvalidDelegateUserId",
	ErrorInvalidExchangeImpersonationHeaderData:           "ErrorInvalidExchangeImpersonationHeaderData",
	ErrorInvalidExcludesRestriction:                       "ErrorInvalidExcludesRestriction",
	ErrorInvalidExpressionTypeForSubFilter:                "ErrorInvalidExpressionTypeForSubFilter",
	ErrorInvalidExtendedProperty:                          "ErrorInvalidExtendedProperty",
	ErrorInvalidExtendedPropertyValue:                     "ErrorInvalidExtendedPropertyValue",
	ErrorInvalidExternalSharingInitiator:                  "ErrorInvalidExternalSharingInitiator",
	ErrorInvalidExternalSharingSubscriber:                 "ErrorInvalidExternalSharingSubscriber",
	ErrorInvalidFederatedOrganizationId:                   "ErrorInvalidFederatedOrganizationId",
	ErrorInvalidFolderId:                                  "ErrorInvalidFolderId",
	ErrorInvalidFolderTypeForOperation:                    "ErrorInvalidFolderTypeForOperation",
	ErrorInvalidFractionalPagingParameters:                "ErrorInvalidFractionalPagingParameters",
	ErrorInvalidFreeBusyViewType:                          "ErrorInvalidFreeBusyViewType",
	ErrorInvalidGetSharingFolderRequest:                   "ErrorInvalidGetSharingFolderRequest",
	ErrorInvalidGetSharingMetadataRequest:                 "ErrorInvalidGetSharingMetadataRequest",
	ErrorInvalidId:                                        "ErrorInvalidId",
	ErrorInvalidIdEmpty:                                   "ErrorInvalidIdEmpty",
	ErrorInvalidIdMalformed:                               "ErrorInvalidIdMalformed",
	ErrorInvalidIdMalformedEwsLegacyIdFormat:              "ErrorInvalidIdMalformedEwsLegacyIdFormat",
	ErrorInvalidIdMonikerTooLong:                          "ErrorInvalidIdMonikerTooLong",
	ErrorInvalidIdNotAnItemAttachmentId:                   "ErrorInvalidIdNotAnItemAttachmentId",
	ErrorInvalidIdReturnedByResolveNames:                  "ErrorInvalidIdReturnedByResolveNames",
	ErrorInvalidIdStoreObjectIdTooLong:                    "ErrorInvalidIdStoreObjectIdTooLong",
	ErrorInvalidIdTooManyAttachmentLevels:                 "ErrorInvalidIdTooManyAttachmentLevels",
	ErrorInvalidIdXml:                                     "ErrorInvalidIdXml",
	ErrorInvalidImContactId:                               "ErrorInvalidImContactId",
	ErrorInvalidImDistributionGroupSmtpAddress:            "ErrorInvalidImDistributionGroupSmtpAddress",
	ErrorInvalidImGroupId:                                 "ErrorInvalidImGroupId",
	ErrorInvalidIndexedPagingParameters:                   "ErrorInvalidIndexedPagingParameters",
	ErrorInvalidInternetHeaderChildNodes:                  "ErrorInvalidInternetHeaderChildNodes",
	ErrorInvalidItemForOperationAcceptItem:                "ErrorInvalidItemForOperationAcceptItem",
	ErrorInvalidItemForOperationArchiveItem:               "ErrorInvalidItemForOperationArchiveItem",
	ErrorInvalidItemForOperationCancelItem:                "ErrorInvalidItemForOperationCancelItem",
	ErrorInvalidItemForOperationCreateItem:                "ErrorInvalidItemForOperationCreateItem",
	ErrorInvalidItemForOperationCreateItemAttachment:      "ErrorInvalidItemForOperationCreateItemAttachment",
	ErrorInvalidItemForOperationDeclineItem:               "ErrorInvalidItemForOperationDeclineItem",
	ErrorInvalidItemForOperationExpandDL:                  "ErrorInvalidItemForOperationExpandDL",
	ErrorInvalidItemForOperationRemoveItem:                "ErrorInvalidItemForOperationRemoveItem",
	ErrorInvalidItemForOperationSendItem:                  "ErrorInvalidItemForOperationSendItem",
	ErrorInvalidItemForOperationTentative:                 "ErrorInvalidItemForOperationTentative",
	ErrorInvalidLikeRequest:                               "ErrorInvalidLikeRequest",
	ErrorInvalidLogonType:                                 "ErrorInvalidLogonType",
	ErrorInvalidMailbox:                                   "ErrorInvalidMailbox",
	ErrorInvalidManagedFolderProperty:                     "ErrorInvalidManagedFolderProperty",
	ErrorInvalidManagedFolderQuota:                        "ErrorInvalidManagedFolderQuota",
	ErrorInvalidManagedFolderSize:                         "ErrorInvalidManagedFolderSize",
	ErrorInvalidManagementRoleHeader:                      "ErrorInvalidManagementRoleHeader",
	ErrorInvalidMergedFreeBusyInterval:                    "ErrorInvalidMergedFreeBusyInterval",
	ErrorInvalidNameForNameResolution:                     "ErrorInvalidNameForNameResolution",
	ErrorInvalidNetworkServiceContext:                     "ErrorInvalidNetworkServiceContext",
	ErrorInvalidOofParameter:                              "ErrorInvalidOofParameter",
	ErrorInvalidOperation:                                 "ErrorInvalidOperation",
	ErrorInvalidOrganizationRelationshipForFreeBusy:       "ErrorInvalidOrganizationRelationshipForFreeBusy",
	ErrorInvalidPagingMaxRows:                             "ErrorInvalidPagingMaxRows",
	ErrorInvalidParentFolder:                              "ErrorInvalidParentFolder",
	ErrorInvalidPercentCompleteValue:                      "ErrorInvalidPercentCompleteValue",
	ErrorInvalidPermissionSettings:                        "ErrorInvalidPermissionSettings",
	ErrorInvalidPhoneCallId:                               "ErrorInvalidPhoneCallId",
	ErrorInvalidPhoneNumber:                               "ErrorInvalidPhoneNumber",
	ErrorInvalidPhotoSize:                                 "ErrorInvalidPhotoSize",
	ErrorInvalidPropertyAppend:                            "ErrorInvalidPropertyAppend",
	ErrorInvalidPropertyDelete:                            "ErrorInvalidPropertyDelete",
	ErrorInvalidPropertyForExists:                         "ErrorInvalidPropertyForExists",
	ErrorInvalidPropertyForOperation:                      "ErrorInvalidPropertyForOperation",
	ErrorInvalidPropertyRequest:                           "ErrorInvalidPropertyRequest",
	ErrorInvalidPropertySet:                               "ErrorInvalidPropertySet",
	ErrorInvalidPropertyUpdateSentMessage:                 "ErrorInvalidPropertyUpdateSentMessage",
	ErrorInvalidProxySecurityContext:                      "ErrorInvalidProxySecurityContext",
	ErrorInvalidPullSubscriptionId:                        "ErrorInvalidPullSubscriptionId",
	ErrorInvalidPushSubscriptionUrl:                       "ErrorInvalidPushSubscriptionUrl",
	ErrorInvalidRecipients:                                "ErrorInvalidRecipients",
	ErrorInvalidRecipientSubfilter:                        "ErrorInvalidRecipientSubfilter",
	ErrorInvalidRecipientSubfilterComparison:              "ErrorInvalidRecipientSubfilterComparison",
	ErrorInvalidRecipientSubfilterOrder:                   "ErrorInvalidRecipientSubfilterOrder",
	ErrorInvalidRecipientSubfilterTextFilter:              "ErrorInvalidRecipientSubfilterTextFilter",
	ErrorInvalidReferenceItem:                             "ErrorInvalidReferenceItem",
	ErrorInvalidRequest:                                   "ErrorInvalidRequest",
	ErrorInvalidRestriction:                               "ErrorInvalidRestriction",
	ErrorInvalidRetentionTagIdGuid:                        "ErrorInvalidRetentionTagIdGuid",
	ErrorInvalidRetentionTagInheritance:                   "ErrorInvalidRetentionTagInheritance",
	ErrorInvalidRetentionTagInvisible:                     "ErrorInvalidRetentionTagInvisible",
	ErrorInvalidRetentionTagTypeMismatch:                  "ErrorInvalidRetentionTagTypeMismatch",
	ErrorInvalidRoutingType:                               "ErrorInvalidRoutingType",
	ErrorInvalidScheduledOofDuration:                      "ErrorInvalidScheduledOofDuration",
	ErrorInvalidSchemaVersionForMailboxVersion:            "ErrorInvalidSchemaVersionForMailboxVersion",
	ErrorInvalidSearchQuerySyntax:                         "ErrorInvalidSearchQuerySyntax",
	ErrorInvalidSecurityDescriptor:                        "ErrorInvalidSecurityDescriptor",
	ErrorInvalidSendItemSaveSettings:                      "ErrorInvalidSendItemSaveSettings",
	ErrorInvalidSerializedAccessToken:                     "ErrorInvalidSerializedAccessToken",
	ErrorInvalidServerVersion:                             "ErrorInvalidServerVersion",
	ErrorInvalidSharingData:                               "ErrorInvalidSharingData",
	ErrorInvalidSharingMessage:                            "ErrorInvalidSharingMessage",
	ErrorInvalidSid:                                       "ErrorInvalidSid",
	ErrorInvalidSIPUri:                                    "ErrorInvalidSIPUri",
	ErrorInvalidSmtpAddress:                               "ErrorInvalidSmtpAddress",
	ErrorInvalidSubfilterType:                             "ErrorInvalidSubfilterType",
	ErrorInvalidSubfilterTypeNotAttendeeType:              "ErrorInvalidSubfilterTypeNotAttendeeType",
	ErrorInvalidSubfilterTypeNotRecipientType:             "ErrorInvalidSubfilterTypeNotRecipientType",
	ErrorInvalidSubscription:                              "ErrorInvalidSubscription",
	ErrorInvalidSubscriptionRequest:                       "ErrorInvalidSubscriptionRequest",
	ErrorInvalidSyncStateData:                             "ErrorInvalidSyncStateData",
	ErrorInvalidTimeInterval:                              "ErrorInvalidTimeInterval",
	ErrorInvalidUserInfo:                                  "ErrorInvalidUserInfo",
	ErrorInvalidUserOofSettings:                           "ErrorInvalidUserOofSettings",
	ErrorInvalidUserPrincipalName:                         "ErrorInvalidUserPrincipalName",
	ErrorInvalidUserSid:                                   "ErrorInvalidUserSid",
	ErrorInvalidUserSidMissingUPN:                         "ErrorInvalidUserSidMissingUPN",
	ErrorInvalidValueForProperty:                          "ErrorInvalidValueForProperty",
	ErrorInvalidWatermark:                                 "ErrorInvalidWatermark",
	ErrorIPGatewayNotFound:                                "ErrorIPGatewayNotFound",
	ErrorIrresolvableConflict:                             "ErrorIrresolvableConflict",
	ErrorItemCorrupt:                                      "ErrorItemCorrupt",
	ErrorItemNotFound:                                     "ErrorItemNotFound",
	ErrorItemPropertyRequestFailed:                        "ErrorItemPropertyRequestFailed",
	ErrorItemSave:                                         "ErrorItemSave",
	ErrorItemSavePropertyError:                            "ErrorItemSavePropertyError",
	ErrorLegacyMailboxFreeBusyViewTypeNotMerged:           "ErrorLegacyMailboxFreeBusyViewTypeNotMerged",
	ErrorLocalServerObjectNotFound:                        "ErrorLocalServerObjectNotFound",
	ErrorLocationServicesDisabled:                         "ErrorLocationServicesDisabled",
	ErrorLocationServicesInvalidRequest:                   "ErrorLocationServicesInvalidRequest",
	ErrorLocationServicesRequestFailed:                    "ErrorLocationServicesRequestFailed",
	ErrorLocationServicesRequestTimedOut:                  "ErrorLocationServicesRequestTimedOut",
	ErrorLogonAsNetworkServiceFailed:                      "ErrorLogonAsNetworkServiceFailed",
	ErrorMailboxConfiguration:                             "ErrorMailboxConfiguration",
	ErrorMailboxDataArrayEmpty:                            "ErrorMailboxDataArrayEmpty",
	ErrorMailboxDataArrayTooBig:                           "ErrorMailboxDataArrayTooBig",
	ErrorMailboxFailover:                                  "ErrorMailboxFailover",
	ErrorMailboxHoldNotFound:                              "ErrorMailboxHoldNotFound",
	ErrorMailboxLogonFailed:                               "ErrorMailboxLogonFailed",
	ErrorMailboxMoveInProgress:                            "ErrorMailboxMoveInProgress",
	ErrorMailboxScopeNotAllowedWithoutQueryString:         "ErrorMailboxScopeNotAllowedWithoutQueryString",
	ErrorMailboxStoreUnavailable:                          "ErrorMailboxStoreUnavailable",
	ErrorMailRecipientNotFound:                            "ErrorMailRecipientNotFound",
	ErrorMailTipsDisabled:                                 "ErrorMailTipsDisabled",
	ErrorManagedFolderAlreadyExists:                       "ErrorManagedFolderAlreadyExists",
	ErrorManagedFolderNotFound:                            "ErrorManagedFolderNotFound",
	ErrorManagedFoldersRootFailure:                        "ErrorManagedFoldersRootFailure",
	ErrorMeetingSuggestionGenerationFailed:                "ErrorMeetingSuggestionGenerationFailed",
	ErrorMessageDispositionRequired:                       "ErrorMessageDispositionRequired",
	ErrorMessagePerFolderCountReceiveQuotaExceeded:        "ErrorMessagePerFolderCountReceiveQuotaExceeded",
	ErrorMessageSizeExceeded:                              "ErrorMessageSizeExceeded",
	ErrorMessageTrackingNoSuchDomain:                      "ErrorMessageTrackingNoSuchDomain",
	ErrorMessageTrackingPermanentError:                    "ErrorMessageTrackingPermanentError",
	ErrorMessageTrackingTransientError:                    "ErrorMessageTrackingTransientError",
	ErrorMimeContentConversionFailed:                      "ErrorMimeContentConversionFailed",
	ErrorMimeContentInvalid:                               "ErrorMimeContentInvalid",
	ErrorMimeContentInvalidBase64String:                   "ErrorMimeContentInvalidBase64String",
	ErrorMissedNotificationEvents:                         "ErrorMissedNotificationEvents",
	ErrorMissingArgument:                                  "ErrorMissingArgument",
	ErrorMissingEmailAddress:                              "ErrorMissingEmailAddress",
	ErrorMissingEmailAddressForManagedFolder:              "ErrorMissingEmailAddressForManagedFolder",
	ErrorMissingInformationEmailAddress:                   "ErrorMissingInformationEmailAddress",
	ErrorMissingInformationReferenceItemId:                "ErrorMissingInformationReferenceItemId",
	ErrorMissingInformationSharingFolderId:                "ErrorMissingInformationSharingFolderId",
	ErrorMissingItemForCreateItemAttachment:               "ErrorMissingItemForCreateItemAttachment",
	ErrorMissingManagedFolderId:                           "ErrorMissingManagedFolderId",
	ErrorMissingRecipients:                                "ErrorMissingRecipients",
	ErrorMissingUserIdInformation:                         "ErrorMissingUserIdInformation",
	ErrorMoreThanOneAccessModeSpecified:                   "ErrorMoreThanOneAccessModeSpecified",
	ErrorMoveCopyFailed:                                   "ErrorMoveCopyFailed",
	ErrorMoveDistinguishedFolder:                          "ErrorMoveDistinguishedFolder",
	ErrorMultiLegacyMailboxAccess:                         "ErrorMultiLegacyMailboxAccess",
	ErrorNameResolutionMultipleResults:                    "ErrorNameResolutionMultipleResults",
	ErrorNameResolutionNoMailbox:                          "ErrorNameResolutionNoMailbox",
	ErrorNameResolutionNoResults:                          "ErrorNameResolutionNoResults",
	ErrorNewEventStreamConnectionOpened:                   "ErrorNewEventStreamConnectionOpened",
	ErrorNoApplicableProxyCASServersAvailable:             "ErrorNoApplicableProxyCASServersAvailable",
	ErrorNoCalendar:                                       "ErrorNoCalendar",
	ErrorNoDestinationCASDueToKerberosRequirements:        "ErrorNoDestinationCASDueToKerberosRequirements",
	ErrorNoDestinationCASDueToSSLRequirements:             "ErrorNoDestinationCASDueToSSLRequirements",
	ErrorNoDestinationCASDueToVersionMismatch:             "ErrorNoDestinationCASDueToVersionMismatch",
	ErrorNoFolderClassOverride:                            "ErrorNoFolderClassOverride",
	ErrorNoFreeBusyAccess:                                 "ErrorNoFreeBusyAccess",
	ErrorNonExistentMailbox:                               "ErrorNonExistentMailbox",
	ErrorNonPrimarySmtpAddress:                            "ErrorNonPrimarySmtpAddress",
	ErrorNoPropertyTagForCustomProperties:                 "ErrorNoPropertyTagForCustomProperties",
	ErrorNoPublicFolderReplicaAvailable:                   "ErrorNoPublicFolderReplicaAvailable",
	ErrorNoPublicFolderServerAvailable:                    "ErrorNoPublicFolderServerAvailable",
	ErrorNoRespondingCASInDestinationSite:                 "ErrorNoRespondingCASInDestinationSite",
	ErrorNoSpeechDetected:                                 "ErrorNoSpeechDetected",
	ErrorNotAcceptable:                                    "ErrorNotAcceptable",
	ErrorNotAllowedExternalSharingByPolicy:                "ErrorNotAllowedExternalSharingByPolicy",
	ErrorNotDelegate:                                      "ErrorNotDelegate",
	ErrorNotEnoughMemory:                                  "ErrorNotEnoughMemory",
	ErrorNotSupportedSharingMessage:                       "ErrorNotSupportedSharingMessage",
	ErrorObjectTypeChanged:                                "ErrorObjectTypeChanged",
	ErrorOccurrenceCrossingBoundary:                       "ErrorOccurrenceCrossingBoundary",
	ErrorOccurrenceTimeSpanTooBig:                         "ErrorOccurrenceTimeSpanTooBig",
	ErrorOperationNotAllowedWithPublicFolderRoot:          "ErrorOperationNotAllowedWithPublicFolderRoot",
	ErrorOrganizationNotFederated:                         "ErrorOrganizationNotFederated",
	ErrorParentFolderIdRequired:                           "ErrorParentFolderIdRequired",
	ErrorParentFolderNotFound:                             "ErrorParentFolderNotFound",
	ErrorPasswordChangeRequired:                           "ErrorPasswordChangeRequired",
	ErrorPasswordExpired:                                  "ErrorPasswordExpired",
	ErrorPermissionNotAllowedByPolicy:                     "ErrorPermissionNotAllowedByPolicy",
	ErrorPhoneNumberNotDialable:                           "ErrorPhoneNumberNotDialable",
	ErrorPromptPublishingOperationFailed:                  "ErrorPromptPublishingOperationFailed",
	ErrorPropertyUpdate:                                   "ErrorPropertyUpdate",
	ErrorPropertyValidationFailure:                        "ErrorPropertyValidationFailure",
	ErrorProxiedSubscriptionCallFailure:                   "ErrorProxiedSubscriptionCallFailure",
	ErrorProxyCallFailed:                                  "ErrorProxyCallFailed",
	ErrorProxyGroupSidLimitExceeded:                       "ErrorProxyGroupSidLimitExceeded",
	ErrorProxyRequestNotAllowed:                           "ErrorProxyRequestNotAllowed",
	ErrorProxyRequestProcessingFailed:                     "ErrorProxyRequestProcessingFailed",
	ErrorProxyServiceDiscoveryFailed:                      "ErrorProxyServiceDiscoveryFailed",
	ErrorProxyTokenExpired:                                "ErrorProxyTokenExpired",
	ErrorPublicFolderMailboxDiscoveryFailed:               "ErrorPublicFolderMailboxDiscoveryFailed",
	ErrorPublicFolderOperationFailed:                      "ErrorPublicFolderOperationFailed",
	ErrorPublicFolderRequestProcessingFailed:              "ErrorPublicFolderRequestProcessingFailed",
	ErrorPublicFolderServerNotFound:                       "ErrorPublicFolderServerNotFound",
	ErrorPublicFolderSyncException:                        "ErrorPublicFolderSyncException",
	ErrorQueryFilterTooLong:                               "ErrorQueryFilterTooLong",
	ErrorQuotaExceeded:                                    "ErrorQuotaExceeded",
	ErrorReadEventsFailed:                                 "ErrorReadEventsFailed",
	ErrorReadReceiptNotPending:                            "ErrorReadReceiptNotPending",
	ErrorRecipientNotFound:                                "ErrorRecipientNotFound",
	ErrorRecognizerNotInstalled:                           "ErrorRecognizerNotInstalled",
	ErrorRecurrenceEndDateTooBig:                          "ErrorRecurrenceEndDateTooBig",
	ErrorRecurrenceHasNoOccurrence:                        "ErrorRecurrenceHasNoOccurrence",
	ErrorRemoteUserMailboxMustSpecifyExplicitLocalMailbox: "ErrorRemoteUserMailboxMustSpecifyExplicitLocalMailbox",
	ErrorRemoveDelegatesFailed:                            "ErrorRemoveDelegatesFailed",
	ErrorRequestAborted:                                   "ErrorRequestAborted",
	ErrorRequestStreamTooBig:                              "ErrorRequestStreamTooBig",
	ErrorRequiredPropertyMissing:                          "ErrorRequiredPropertyMissing",
	ErrorResolveNamesInvalidFolderType:                    "ErrorResolveNamesInvalidFolderType",
	ErrorResolveNamesOnlyOneContactsFolderAllowed:         "ErrorResolveNamesOnlyOneContactsFolderAllowed",
	ErrorResponseSchemaValidation:                         "ErrorResponseSchemaValidation",
	ErrorRestrictionTooComplex:                            "ErrorRestrictionTooComplex",
	ErrorRestrictionTooLong:                               "ErrorRestrictionTooLong",
	ErrorResultSetTooBig:                                  "ErrorResultSetTooBig",
	ErrorSavedItemFolderNotFound:                          "ErrorSavedItemFolderNotFound",
	ErrorSchemaValidation:                                 "ErrorSchemaValidation",
	ErrorSearchFolderNotInitialized:                       "ErrorSearchFolderNotInitialized",
	ErrorSendAsDenied:                                     "ErrorSendAsDenied",
	ErrorSendMeetingCancellationsRequired:                 "ErrorSendMeetingCancellationsRequired",
	ErrorSendMeetingInvitationsOrCancellationsRequired:    "ErrorSendMeetingInvitationsOrCancellationsRequired",
	ErrorSendMeetingInvitationsRequired:                   "ErrorSendMeetingInvitationsRequired",
	ErrorSentMeetingRequestUpdate:                         "ErrorSentMeetingRequestUpdate",
	ErrorSentTaskRequestUpdate:                            "ErrorSentTaskRequestUpdate",
	ErrorServerBusy:                                       "ErrorServerBusy",
	ErrorServiceDiscoveryFailed:                           "ErrorServiceDiscoveryFailed",
	ErrorSharingNoExternalEwsAvailable:                    "ErrorSharingNoExternalEwsAvailable",
	ErrorSharingSynchronizationFailed:                     "ErrorSharingSynchronizationFailed",
	ErrorSpeechGrammarError:                               "ErrorSpeechGrammarError",
	ErrorStaleObject:                                      "ErrorStaleObject",
	ErrorSubmissionQuotaExceeded:                          "ErrorSubmissionQuotaExceeded",
	ErrorSubscriptionAccessDenied:                         "ErrorSubscriptionAccessDenied",
	ErrorSubscriptionDelegateAccessNotSupported:           "ErrorSubscriptionDelegateAccessNotSupported",
	ErrorSubscriptionNotFound:                             "ErrorSubscriptionNotFound",
	ErrorSubscriptionUnsubscribed:                         "ErrorSubscriptionUnsubscribed",
	ErrorSyncFolderNotFound:                               "ErrorSyncFolderNotFound",
	ErrorTeamMailboxActiveToPendingDelete:                 "ErrorTeamMailboxActiveToPendingDelete",
	ErrorTeamMailboxErrorUnknown:                          "ErrorTeamMailboxErrorUnknown",
	ErrorTeamMailboxFailedSendingNotifications:            "ErrorTeamMailboxFailedSendingNotifications",
	ErrorTeamMailboxNotAuthorizedOwner:                    "ErrorTeamMailboxNotAuthorizedOwner",
	ErrorTeamMailboxNotFound:                              "ErrorTeamMailboxNotFound",
	ErrorTeamMailboxNotLinkedToSharePoint:                 "ErrorTeamMailboxNotLinkedToSharePoint",
	ErrorTeamMailboxUrlValidationFailed:                   "ErrorTeamMailboxUrlValidationFailed",
	ErrorTimeIntervalTooBig:                               "ErrorTimeIntervalTooBig",
	ErrorTimeoutExpired:                                   "ErrorTimeoutExpired",
	ErrorTimeZone:                                         "ErrorTimeZone",
	ErrorToFolderNotFound:                                 "ErrorToFolderNotFound",
	ErrorTokenSerializationDenied:                         "ErrorTokenSerializationDenied",
	ErrorTooManyObjectsOpened:                             "ErrorTooManyObjectsOpened",
	ErrorUMServerUnavailable:                              "ErrorUMServerUnavailable",
	ErrorUnableToGetUserOofSettings:                       "ErrorUnableToGetUserOofSettings",
	ErrorUnableToRemoveImContactFromGroup:                 "ErrorUnableToRemoveImContactFromGroup",
	ErrorUnifiedMessagingDialPlanNotFound:                 "ErrorUnifiedMessagingDialPlanNotFound",
	ErrorUnifiedMessagingPromptNotFound:                   "ErrorUnifiedMessagingPromptNotFound",
	ErrorUnifiedMessagingReportDataNotFound:               "ErrorUnifiedMessagingReportDataNotFound",
	ErrorUnifiedMessagingRequestFailed:                    "ErrorUnifiedMessagingRequestFailed",
	ErrorUnifiedMessagingServerNotFound:                   "ErrorUnifiedMessagingServerNotFound",
	ErrorUnsupportedCulture:                               "ErrorUnsupportedCulture",
	ErrorUnsupportedMapiPropertyType:                      "ErrorUnsupportedMapiPropertyType",
	ErrorUnsupportedMimeConversion:                        "ErrorUnsupportedMimeConversion",
	ErrorUnsupportedPathForQuery:                          "ErrorUnsupportedPathForQuery",
	ErrorUnsupportedPathForSortGroup:                      "ErrorUnsupportedPathForSortGroup",
	ErrorUnsupportedPropertyDefinition:                    "ErrorUnsupportedPropertyDefinition",
	ErrorUnsupportedQueryFilter:                           "ErrorUnsupportedQueryFilter",
	ErrorUnsupportedRecurrence:                            "ErrorUnsupportedRecurrence",
	ErrorUnsupportedSubFilter:                             "ErrorUnsupportedSubFilter",
	ErrorUnsupportedTypeForConversion:                     "ErrorUnsupportedTypeForConversion",
	ErrorUpdateDelegatesFailed:                            "ErrorUpdateDelegatesFailed",
	ErrorUpdatePropertyMismatch:                           "ErrorUpdatePropertyMismatch",
	ErrorUserNotUnifiedMessagingEnabled:                   "ErrorUserNotUnifiedMessagingEnabled",
	ErrorUserWithoutFederatedProxyAddress:                 "ErrorUserWithoutFederatedProxyAddress",
	ErrorValueOutOfRange:                                  "ErrorValueOutOfRange",
	ErrorVirusDetected:                                    "ErrorVirusDetected",
	ErrorVirusMessageDeleted:                              "ErrorVirusMessageDeleted",
	ErrorVoiceMailNotImplemented:                          "ErrorVoiceMailNotImplemented",
	ErrorWeatherServiceDisabled:                           "ErrorWeatherServiceDisabled",
	ErrorWebRequestInInvalidState:                         "ErrorWebRequestInInvalidState",
	ErrorWin32InteropError:                                "ErrorWin32InteropError",
	ErrorWorkingHoursSaveFailed:                           "ErrorWorkingHoursSaveFailed",
	ErrorWorkingHoursXmlMalformed:                         "ErrorWorkingHoursXmlMalformed",
	ErrorWrongServerVersion:                               "ErrorWrongServerVersion",
	ErrorWrongServerVersionDelegate:                       "ErrorWrongServerVersionDelegate",
}
