package review

import (
	"fmt"
	"sort"
)

// RejectionLocation controls where a force-rejection message is delivered.
type RejectionLocation string

const (
	// RejectionLocationPublic delivers to the public log channel. Cleanup
	// of the review thread and message is deliberately not run, staff are
	// directed to clean up manually.
	RejectionLocationPublic RejectionLocation = "public"
	// RejectionLocationThread delivers into the submission's feedback
	// thread, creating it if absent, then runs cleanup.
	RejectionLocationThread RejectionLocation = "thread"
	// RejectionLocationNone delivers nothing, e.g. when the author has
	// left the community. Cleanup still runs.
	RejectionLocationNone RejectionLocation = "none"
)

// RejectionTemplate generates a preset rejection message for a submission.
// Templates are process-wide, immutable configuration.
type RejectionTemplate struct {
	Key      string
	Label    string
	Location RejectionLocation

	// AllowedFromError permits this reason on submissions stuck in the
	// ERROR state, where core data such as the author may be unresolved.
	AllowedFromError bool

	// Execute renders the message given the author mention and the
	// submission name. Pure, no side effects.
	Execute func(user, name string) string
}

// TemplateRouter is the static lookup from rejection reason keys to
// templates.
type TemplateRouter struct {
	templates map[string]RejectionTemplate
}

func NewTemplateRouter() *TemplateRouter {
	router := &TemplateRouter{templates: make(map[string]RejectionTemplate)}

	for _, template := range defaultTemplates() {
		router.templates[template.Key] = template
	}

	return router
}

// LookupByKey returns the template for a reason key. The second return
// value reports whether the key is known; unknown keys are a client or
// configuration error to be reported by the caller.
func (r *TemplateRouter) LookupByKey(key string) (RejectionTemplate, bool) {
	template, ok := r.templates[key]
	return template, ok
}

// Templates returns all configured templates ordered by key, for command
// registration.
func (r *TemplateRouter) Templates() []RejectionTemplate {
	templates := make([]RejectionTemplate, 0, len(r.templates))

	for _, template := range r.templates {
		templates = append(templates, template)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Key < templates[j].Key
	})

	return templates
}

func defaultTemplates() []RejectionTemplate {
	return []RejectionTemplate{
		{
			Key:      "no-license",
			Label:    "No license",
			Location: RejectionLocationThread,
			Execute: func(user, name string) string {
				return fmt.Sprintf("%s, your project has been rejected because it does not contain a valid LICENSE, LICENSE.txt or LICENSE.md file. Please add a license to your project and let us know so we can process your submission. See <https://choosealicense.com/> for more information", user)
			},
		},
		{
			Key:      "invalid-license",
			Label:    "Invalid license (Non OSI / not immediately visible)",
			Location: RejectionLocationThread,
			Execute: func(user, name string) string {
				return fmt.Sprintf("%s, your project has been rejected because it contains a non-OSI license or the license is not immediately visible in the root of the project. Please use an OSI license in a file called LICENSE, LICENSE.txt or LICENSE.md and then let us know so we can process your submission. See <https://choosealicense.com/> for more information.", user)
			},
		},
		{
			Key:      "inaccessable-repository",
			Label:    "Inaccessable repository",
			Location: RejectionLocationThread,
			Execute: func(user, name string) string {
				return fmt.Sprintf("%s, your project has been rejected because the provided repository link could not be accessed. Please double check the URL, privacy settings and account information, then provide us with a URL so we can process your submission.", user)
			},
		},
		{
			Key:      "empty-repository",
			Label:    "Empty repository",
			Location: RejectionLocationThread,
			Execute: func(user, name string) string {
				return fmt.Sprintf("%s, your project has been rejected because the provided repository was empty. Please double check the URL and account information, then provide us with a URL so we can process your submission.", user)
			},
		},
		{
			Key:      "invalid-repository",
			Label:    "Invalid link (Not GitHub or GitLab)",
			Location: RejectionLocationThread,
			Execute: func(user, name string) string {
				return fmt.Sprintf("%s, your project has been rejected because the provided link did not point to a valid GitHub or GitLab repository. Please double check the URL and account information, then provide us with a URL so we can process your submission.", user)
			},
		},
		{
			Key:              "invalid-id",
			Label:            "Invalid user ID",
			Location:         RejectionLocationPublic,
			AllowedFromError: true,
			Execute: func(user, name string) string {
				return fmt.Sprintf("To whomever submitted %q, the provided ID was invalid. Please provide us with your ID so we can process your submission. For help with getting your ID, see <https://support.discord.com/hc/en-us/articles/206346498-Where-can-I-find-my-User-Server-Message-ID->", name)
			},
		},
		{
			Key:      "plagiarism",
			Label:    "Plagiarism",
			Location: RejectionLocationThread,
			Execute: func(user, name string) string {
				return fmt.Sprintf("%s, your project has been rejected because it is blatant plagiarism. Do not resubmit and do not submit plagiarised projects again.", user)
			},
		},
		{
			Key:      "ad",
			Label:    "Advertisement",
			Location: RejectionLocationThread,
			Execute: func(user, name string) string {
				return fmt.Sprintf("%s, your project has been rejected because it is an advertisement to another service / platform. This goes against our policy on advertisements <https://docs.thecodingden.net/community-policy-center/rules#ads>. Do not resubmit this project.", user)
			},
		},
		{
			Key:              "author-left",
			Label:            "Author left the server",
			Location:         RejectionLocationNone,
			AllowedFromError: true,
			Execute: func(user, name string) string {
				return ""
			},
		},
	}
}
