package template

var serviceAgreementDefaults = map[string]string{
	"date":                   "[DATE]",
	"client":                 "[CLIENT NAME]",
	"client_address":         "[CLIENT ADDRESS]",
	"provider":               "[PROVIDER NAME]",
	"provider_address":       "[PROVIDER ADDRESS]",
	"scope":                  "[DESCRIBE SERVICES IN DETAIL]",
	"start_date":             "[START DATE]",
	"duration":               "12 months",
	"renewal_notice":         "30 days",
	"payment":                "Rs. [AMOUNT]",
	"payment_frequency":      "month",
	"payment_days":           "30 days",
	"late_fee":               "1%",
	"grace_period":           "15 day",
	"termination_notice":     "60 days",
	"cure_period":            "15 days",
	"confidentiality_period": "3 years",
	"liability_cap":          "6 months of fees paid",
	"jurisdiction":           "[CITY]",
}

const serviceAgreementText = `SERVICE AGREEMENT

This Service Agreement is entered into on {date}

BETWEEN:
{client}, having office at {client_address} (hereinafter referred to as "Client")

AND:
{provider}, having office at {provider_address} (hereinafter referred to as "Service Provider")

WHEREAS both parties wish to enter into a mutually beneficial service arrangement.

1. SERVICES
The Service Provider shall provide the following services:
{scope}

2. TERM
This Agreement shall be effective from {start_date} for an initial period of {duration}.

2.1 Renewal: Either party may choose to renew by mutual written consent {renewal_notice} before expiry.
2.2 No automatic renewal without explicit consent from both parties.

3. COMPENSATION
3.1 Service Fee: {payment} per {payment_frequency} plus applicable GST
3.2 Payment Terms: Due within {payment_days} of invoice date
3.3 Late Payment: {late_fee} per month interest after {grace_period} grace period

4. TERMINATION
4.1 Either party may terminate with {termination_notice} written notice
4.2 Termination for cause (material breach) requires {cure_period} notice and opportunity to cure
4.3 Upon termination, Client shall pay for services rendered until termination date

5. INTELLECTUAL PROPERTY
5.1 Pre-existing IP of each party remains with that party
5.2 New IP created specifically for Client's project shall belong to Client
5.3 Service Provider retains right to use generic methodologies and frameworks
5.4 Service Provider may showcase work in portfolio with Client's prior written consent

6. CONFIDENTIALITY
6.1 Both parties shall maintain confidentiality of proprietary information
6.2 Confidentiality obligation survives for {confidentiality_period} post-termination
6.3 Excludes: publicly available information, information required by law to be disclosed

7. LIABILITY AND INDEMNIFICATION
7.1 Each party shall indemnify the other for breaches of this Agreement
7.2 Total liability capped at {liability_cap}
7.3 Neither party liable for indirect, consequential, or punitive damages
7.4 Force majeure events exempt parties from liability

8. PERFORMANCE STANDARDS
Service Provider shall use commercially reasonable efforts to achieve agreed deliverables and quality standards outlined in Annexure A.

9. INDEPENDENT CONTRACTOR
Service Provider is an independent contractor, not an employee. Responsible for own taxes, insurance, and regulatory compliance.

10. AMENDMENTS
Any amendments must be in writing and signed by both parties. No unilateral changes permitted.

11. DISPUTE RESOLUTION
11.1 Disputes shall first be attempted to be resolved through good faith negotiations (30 days)
11.2 If unresolved, parties may pursue mediation
11.3 Arbitration under Arbitration and Conciliation Act, 1996
11.4 Venue: {jurisdiction}
11.5 Each party bears own costs unless arbitrator decides otherwise

12. FORCE MAJEURE
Neither party liable for delays due to circumstances beyond reasonable control including natural disasters, strikes, pandemics, or government actions. Affected party must notify within 7 days.

13. GOVERNING LAW
This Agreement shall be governed by the laws of India. Courts in {jurisdiction} shall have jurisdiction.

14. ENTIRE AGREEMENT
This Agreement constitutes the complete agreement between the parties and supersedes all prior discussions and understandings.

15. NOTICES
All notices shall be sent to the addresses mentioned above via email and registered post.

AGREED AND ACCEPTED:

For {client}              For {provider}
_____________________                                _____________________
Name:                                                Name:
Designation:                                         Designation:
Date:                                                Date:

ANNEXURE A: Scope of Work and Deliverables
[To be attached]
`

var ndaDefaults = map[string]string{
	"date":                   "[DATE]",
	"party1":                 "[PARTY 1 NAME]",
	"party1_address":         "[ADDRESS]",
	"party2":                 "[PARTY 2 NAME]",
	"party2_address":         "[ADDRESS]",
	"purpose":                "[STATE PURPOSE]",
	"duration":               "2 years",
	"confidentiality_period": "3 years",
	"jurisdiction":           "[CITY]",
}

const ndaText = `NON-DISCLOSURE AGREEMENT (NDA)

This Agreement is made on {date}

BETWEEN:
{party1}, having office at {party1_address} ("Disclosing Party")

AND:
{party2}, having office at {party2_address} ("Receiving Party")

WHEREAS the parties wish to explore a business relationship and need to share confidential information.

1. PURPOSE
The parties wish to share confidential information for the purpose of: {purpose}

2. CONFIDENTIAL INFORMATION
"Confidential Information" means any information disclosed by one party to the other, whether orally or in writing, that is designated as confidential or that reasonably should be understood to be confidential.

2.1 Includes: Technical data, business plans, financial information, customer lists, trade secrets
2.2 Excludes:
    - Information that is publicly available
    - Information already known to receiving party
    - Information independently developed
    - Information required to be disclosed by law

3. OBLIGATIONS
3.1 Receiving Party shall:
    - Maintain confidentiality using reasonable care
    - Use information only for stated purpose
    - Not disclose to third parties without written consent
    - Return or destroy information upon request

3.2 This is a MUTUAL NDA - obligations apply to both parties

4. TERM
This Agreement shall remain in effect for {duration} from the date of signing.
Confidentiality obligations survive for {confidentiality_period} after termination.

5. NO LICENSE
This Agreement does not grant any license or rights to intellectual property.

6. REMEDIES
Breach of this Agreement may result in irreparable harm. Either party may seek injunctive relief and damages.

7. GOVERNING LAW
This Agreement is governed by Indian laws. Jurisdiction: {jurisdiction}.

IN WITNESS WHEREOF, the parties have executed this Agreement.

For {party1}           For {party2}
_____________________                              _____________________
Authorized Signatory                               Authorized Signatory
Date:                                              Date:
`

var freelancerDefaults = map[string]string{
	"date":               "[DATE]",
	"client":             "[CLIENT NAME]",
	"client_address":     "[ADDRESS]",
	"freelancer":         "[FREELANCER NAME]",
	"freelancer_address": "[ADDRESS]",
	"services":           "[DESCRIBE SERVICES]",
	"rate":               "Rs. [AMOUNT]",
	"rate_basis":         "hour/day/project",
	"payment_terms":      "Net 30 days",
	"expenses":           "Pre-approved expenses reimbursed with receipts",
	"completion_date":    "[DATE]",
	"notice_period":      "15 days",
	"confidentiality":    "2 years",
	"jurisdiction":       "[CITY]",
}

const freelancerText = `FREELANCER AGREEMENT

This Agreement is made on {date}

BETWEEN:
{client}, having office at {client_address} ("Client")

AND:
{freelancer}, residing at {freelancer_address} ("Freelancer")

1. SERVICES
Freelancer shall provide the following services:
{services}

2. COMPENSATION
2.1 Rate: {rate} per {rate_basis}
2.2 Payment: {payment_terms} from invoice
2.3 Expenses: {expenses}

3. TERM
Project-based work expected to complete by {completion_date}.
Either party may terminate with {notice_period} notice.

4. INTELLECTUAL PROPERTY
4.1 Work Product: All deliverables created specifically for this project belong to Client
4.2 Freelancer Tools: Freelancer retains rights to general tools, templates, and methodologies
4.3 Attribution: Freelancer may showcase work in portfolio with Client consent

5. INDEPENDENT CONTRACTOR
Freelancer is an independent contractor. Responsible for own:
- Taxes and GST registration
- Insurance
- Equipment and software
- Work schedule and methods

6. CONFIDENTIALITY
Freelancer shall maintain confidentiality of Client information for {confidentiality}.

7. NON-COMPETE (LIMITED)
During project term, Freelancer shall not work on directly competing projects for Client's direct competitors in the same niche.
Note: This does NOT restrict Freelancer from working in the same industry generally.

8. LIABILITY
8.1 Freelancer liable only for direct damages caused by gross negligence
8.2 Liability capped at total fees paid
8.3 No liability for consequential or indirect damages

9. DISPUTE RESOLUTION
Disputes to be resolved through mediation, then arbitration in {jurisdiction}.

10. GOVERNING LAW
Governed by Indian laws. Jurisdiction: {jurisdiction}.

AGREED:

Client: _____________________          Freelancer: _____________________
Date:                                  Date:
`
