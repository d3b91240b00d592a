// Package ceipal pushes one normalized profile into the Ceipal ATS as a new
// applicant: authenticate, build the applicant record, single POST. No
// retries; both failure modes surface as one descriptive error.
package ceipal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"profilescout-engine/internal/domain"
)

type Client struct {
	AuthURL string
	PushURL string
	Email   string

	password string
	apiKey   string
	hc       *http.Client
}

func New(authURL, pushURL, email, password, apiKey string) *Client {
	return &Client{
		AuthURL:  authURL,
		PushURL:  pushURL,
		Email:    email,
		password: password,
		apiKey:   apiKey,
		hc:       &http.Client{Timeout: 30 * time.Second},
	}
}

// Applicant is the record shape Ceipal's custom-applicant endpoint accepts.
type Applicant struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	EmailAddress       string `json:"email_address"`
	MobileNumber       string `json:"mobile_number"`
	LinkedinProfileURL string `json:"linkedin_profile_url"`
	JobTitle           string `json:"job_title"`
	CurrentCompany     string `json:"current_company"`
	Skills             string `json:"skills"`
	Industry           string `json:"industry"`
	AdditionalComments string `json:"additional_comments"`
	ExperienceYears    string `json:"experience_years"`
	ExperienceMonths   string `json:"experience_months"`
	City               string `json:"city"`
	// Required by the API even when empty.
	Filename      string `json:"filename"`
	ResumeContent string `json:"resume_content"`
	Source        Source `json:"source"`
}

type Source struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var linkedInSource = Source{ID: 6, Name: "LinkedIn"}

// CreateApplicant authenticates and pushes the profile. The response body is
// returned as-is for the caller to relay.
func (c *Client) CreateApplicant(ctx context.Context, p domain.NormalizedProfile) (map[string]any, error) {
	token, err := c.authToken(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal([]Applicant{BuildApplicant(p)})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.PushURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not create applicant in Ceipal: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("could not create applicant in Ceipal: status %d", res.StatusCode)
	}

	var out map[string]any
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("could not create applicant in Ceipal: %w", err)
	}
	return out, nil
}

func (c *Client) authToken(ctx context.Context) (string, error) {
	creds, _ := json.Marshal(map[string]any{
		"email":    c.Email,
		"password": c.password,
		"api_key":  c.apiKey,
		"json":     1,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.AuthURL, bytes.NewReader(creds))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not authenticate with Ceipal: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return "", fmt.Errorf("could not authenticate with Ceipal: status %d", res.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("could not authenticate with Ceipal: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("could not authenticate with Ceipal: no token in response")
	}
	return body.AccessToken, nil
}

// BuildApplicant maps a profile onto the Ceipal record. Email is mandatory
// there, so a synthesized placeholder fills in when the scrape found none.
func BuildApplicant(p domain.NormalizedProfile) Applicant {
	first, last := domain.SplitFullName(p.FullName)
	city, _, _ := domain.SplitLocation(p.Location)

	email := p.Email
	if !p.HasEmail() {
		email = FallbackEmail(p.FullName)
	}

	comments := p.Summary
	if p.Location != "" && p.Location != domain.NotAvailable {
		comments = "Location: " + p.Location + ". " + comments
	}
	if !p.HasEmail() {
		comments = "Email not found during scrape. " + comments
	}

	years, months := experienceSplit(p)

	phone := p.Phone
	if phone == domain.NotAvailable {
		phone = ""
	}
	skills := p.Skills
	if skills == domain.NotAvailable {
		skills = ""
	}

	return Applicant{
		FirstName:          first,
		LastName:           last,
		EmailAddress:       email,
		MobileNumber:       phone,
		LinkedinProfileURL: p.ProfileURL,
		JobTitle:           truncate(p.Title, 250),
		CurrentCompany:     p.Company,
		Skills:             skills,
		Industry:           p.Industry,
		AdditionalComments: truncate(comments, 250),
		ExperienceYears:    years,
		ExperienceMonths:   months,
		City:               city,
		Source:             linkedInSource,
	}
}

// FallbackEmail synthesizes the mandatory address from the name:
// "Jane Q Doe" -> jane.q.doe@no-email-provided.com.
func FallbackEmail(fullName string) string {
	name := strings.ToLower(strings.Join(strings.Fields(fullName), "."))
	if name == "" || name == strings.ToLower(domain.NotAvailable) {
		name = "candidate"
	}
	return name + "@no-email-provided.com"
}

func experienceSplit(p domain.NormalizedProfile) (years, months string) {
	if p.ExperienceInMonths > 0 {
		return strconv.Itoa(p.ExperienceInMonths / 12), strconv.Itoa(p.ExperienceInMonths % 12)
	}
	return parseLegacyDuration(p.Experience)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
