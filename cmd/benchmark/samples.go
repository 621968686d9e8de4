package main

import "strings"

// Sample is a piece of legal text sent through a render pass.
type Sample struct {
	Name string
	Text string
}

// Samples are contract excerpts at increasing lengths, used for timing.
var Samples = []Sample{
	{
		Name: "tiny",
		Text: "This Agreement shall be governed by and construed in accordance with the laws of the State of New York, without regard to its conflict of laws principles.",
	},
	{
		Name: "short",
		Text: `Limitation of Liability. IN NO EVENT SHALL EITHER PARTY BE LIABLE TO THE OTHER FOR ANY INDIRECT, INCIDENTAL, CONSEQUENTIAL, SPECIAL, EXEMPLARY OR PUNITIVE DAMAGES, INCLUDING WITHOUT LIMITATION LOSS OF PROFITS, REVENUE, DATA OR USE, ARISING OUT OF OR IN CONNECTION WITH THIS AGREEMENT, WHETHER IN CONTRACT, TORT OR OTHERWISE, EVEN IF SUCH PARTY HAS BEEN ADVISED OF THE POSSIBILITY OF SUCH DAMAGES. EACH PARTY'S AGGREGATE LIABILITY UNDER THIS AGREEMENT SHALL NOT EXCEED THE FEES PAID BY CUSTOMER IN THE TWELVE (12) MONTHS PRECEDING THE CLAIM.`,
	},
	{
		Name: "medium",
		Text: `1. Term and Termination.

1.1 Term. This Agreement commences on the Effective Date and continues for an initial term of one (1) year, after which it shall automatically renew for successive one (1) year periods unless either party gives written notice of non-renewal at least thirty (30) days prior to the end of the then-current term.

1.2 Termination for Cause. Either party may terminate this Agreement upon written notice if the other party materially breaches this Agreement and fails to cure such breach within thirty (30) days after receiving written notice thereof.

1.3 Effect of Termination. Upon any termination or expiration of this Agreement, (a) all licenses granted hereunder shall immediately terminate, (b) Customer shall cease all use of the Service, and (c) each party shall return or destroy the Confidential Information of the other party in its possession. Sections 4 (Confidentiality), 7 (Indemnification) and 8 (Limitation of Liability) shall survive any termination or expiration of this Agreement.`,
	},
	{
		Name: "long",
		Text: `CONFIDENTIALITY.

(a) Definition. "Confidential Information" means all non-public information disclosed by or on behalf of a party ("Discloser") to the other party ("Recipient"), whether orally, visually or in writing, that is designated as confidential or that reasonably should be understood to be confidential given the nature of the information and the circumstances of disclosure, including without limitation business plans, technical data, product roadmaps, pricing, customer lists and the terms of this Agreement.

(b) Exclusions. Confidential Information does not include information that Recipient can demonstrate (i) is or becomes generally available to the public through no fault of Recipient, (ii) was rightfully known to Recipient without restriction before receipt from Discloser, (iii) is rightfully disclosed to Recipient by a third party without restriction, or (iv) is independently developed by Recipient without use of or reference to Discloser's Confidential Information.

(c) Obligations. Recipient shall (i) use Discloser's Confidential Information solely to perform its obligations or exercise its rights under this Agreement, (ii) not disclose such Confidential Information to any third party other than its employees, contractors and advisors who have a need to know and are bound by written obligations of confidentiality no less protective than those herein, and (iii) protect such Confidential Information using at least the same degree of care it uses to protect its own confidential information of like nature, but in no event less than reasonable care.

(d) Compelled Disclosure. If Recipient is required by law, regulation or court order to disclose any Confidential Information, Recipient shall, to the extent legally permitted, provide Discloser with prompt written notice so that Discloser may seek a protective order or other appropriate remedy, and Recipient shall disclose only that portion of the Confidential Information that it is legally required to disclose.

(e) Remedies. Recipient acknowledges that unauthorized disclosure of Confidential Information may cause irreparable harm to Discloser for which monetary damages would be an inadequate remedy. Accordingly, Discloser shall be entitled to seek injunctive relief in addition to any other remedies available at law or in equity, without the necessity of posting bond.`,
	},
	{
		Name: "max",
		Text: strings.Repeat(`INDEMNIFICATION. Provider shall defend, indemnify and hold harmless Customer and its officers, directors, employees and agents from and against any and all claims, damages, losses, liabilities, costs and expenses (including reasonable attorneys' fees) arising out of or relating to any third-party claim that the Service, as provided by Provider and used by Customer in accordance with this Agreement, infringes or misappropriates any patent, copyright, trademark or trade secret of such third party. Provider's obligations under this Section are conditioned upon Customer (i) giving Provider prompt written notice of the claim, (ii) granting Provider sole control of the defense and settlement thereof, and (iii) providing reasonable cooperation at Provider's expense.

`, 6),
	},
}

// QualitySamples are short clauses with a clear plain-English meaning, used
// to eyeball summary quality (--quality).
var QualitySamples = []Sample{
	{
		Name: "arbitration",
		Text: "Any dispute arising out of or relating to this Agreement shall be finally resolved by binding arbitration administered by the American Arbitration Association, and the parties hereby waive any right to a jury trial or to participate in a class action.",
	},
	{
		Name: "auto-renewal",
		Text: "Unless terminated by either party upon no less than sixty (60) days' prior written notice, this Subscription shall automatically renew for successive twelve-month terms at the then-current list price.",
	},
	{
		Name: "assignment",
		Text: "Neither party may assign or transfer this Agreement, by operation of law or otherwise, without the prior written consent of the other party, except that either party may assign this Agreement without consent to a successor in connection with a merger, acquisition or sale of all or substantially all of its assets.",
	},
	{
		Name: "warranty",
		Text: "EXCEPT AS EXPRESSLY SET FORTH HEREIN, THE SOFTWARE IS PROVIDED \"AS IS\" AND LICENSOR DISCLAIMS ALL WARRANTIES, EXPRESS OR IMPLIED, INCLUDING ANY IMPLIED WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, TITLE AND NON-INFRINGEMENT.",
	},
	{
		Name: "data",
		Text: "Customer hereby grants Provider a worldwide, royalty-free, non-exclusive license to use, reproduce and create derivative works of Customer Data solely to the extent necessary to provide, maintain and improve the Service, including the training of aggregated and de-identified analytics models.",
	},
}
