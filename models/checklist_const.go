package models

type SubmissionStatus string

const (
	SubmissionStatusComplete   SubmissionStatus = "complete"
	SubmissionStatusIncomplete SubmissionStatus = "incomplete"
	SubmissionStatusPending    SubmissionStatus = "pending"
)

const (
	AnswerYes = "Yes"
	AnswerNo  = "No"
	// Third option allowed on question 10 only.
	AnswerOptOutPersonalDevice = "Choose not to use personal device for work purposes"
)

// MultiSelectMinCount is the minimum number of selected options on question 6
// for the checklist to count as fully answered.
const MultiSelectMinCount = 3

var MultiSelectOptions = []string{"Workday", "Mimecast", "Office 365"}

var Departments = []string{"IT Support", "Customer Service", "Sales", "HR", "Development"}

// QuestionTexts holds the checklist question wording in form order.
// Question 6 is the multi-select item, all others are single-choice.
var QuestionTexts = map[string]string{
	"q1":  "Employee received their Username/Password and was able to successfully login to their laptop",
	"q2":  "Employee was able to setup Okta Verify or Google Auth",
	"q3":  "Employee was able to connect to and test the VPN",
	"q4":  "Employee setup their Employee Signature in Outlook",
	"q5":  "Employee was able to access OneDrive and was told how to use it and what folders are backed up automatically",
	"q6":  "Employee was shown how to access their Okta Tiles and verified the following tiles work",
	"q7":  "Employee was able to login to Microsoft Teams",
	"q8":  "Employee was able to test and verify Zoom works, as well as the Zoom Plugin with Outlook",
	"q9":  "Employee was able to sign into Genesys Cloud both through the installed application and online",
	"q10": "Employee was shown how to setup the Company Portal on their phone",
	"q11": "Employee checked for additional updates on their system (Windows/Dell Command/Apple)",
	"q12": "Verified their system is setup properly in InTune/Jamf",
}

// ScalarQuestionKeys lists the single-choice questions in form order (q6 excluded).
var ScalarQuestionKeys = []string{"q1", "q2", "q3", "q4", "q5", "q7", "q8", "q9", "q10", "q11", "q12"}

// ResponseTopics maps single-choice question keys to the named response topics
// shown in the admin panel.
var ResponseTopics = map[string]string{
	"q1":  "company_handbook",
	"q2":  "team_introduction",
	"q3":  "orientation_session",
	"q4":  "tax_forms",
	"q5":  "benefits_enrollment",
	"q7":  "direct_deposit",
	"q8":  "equipment_received",
	"q9":  "email_setup",
	"q10": "software_access",
	"q11": "compliance_training",
	"q12": "job_description_review",
}

// StatusByCompletion classifies a completion percentage into a lifecycle status.
func StatusByCompletion(completion int) SubmissionStatus {
	if completion == 100 {
		return SubmissionStatusComplete
	}
	if completion >= 50 {
		return SubmissionStatusPending
	}
	return SubmissionStatusIncomplete
}
