package templates

// Fixed-layout influencer agreement. Section order is part of the
// document contract: title, parties, scope of work, compensation, term
// dates, signature blocks.
const contractTmpl = `
<html>
<head>
   <style>
      body { font-family: Georgia, serif; margin: 48px; color: #111; }
      h1 { text-align: center; font-size: 22px; letter-spacing: 1px; }
      h2 { font-size: 15px; margin: 28px 0 8px 0; border-bottom: 1px solid #999; }
      p { font-size: 13px; line-height: 1.6; }
      .sig { margin-top: 64px; width: 45%; display: inline-block; }
      .sig .line { border-top: 1px solid #000; padding-top: 6px; font-size: 12px; }
   </style>
</head>
<body>
   <h1>INFLUENCER MARKETING AGREEMENT</h1>
   <p style="text-align:center;">Contract No. {{ContractId}}</p>

   <h2>1. Parties</h2>
   <p>
      This agreement is entered into as of {{EffectiveDate}} between
      <b>{{BrandName}}</b> (the "Brand") and <b>{{InfluencerName}}</b>
      (the "Influencer") in connection with campaign {{CampaignId}}.
   </p>

   <h2>2. Scope of Work</h2>
   <p>{{DeliverableDescription}}</p>

   <h2>3. Compensation</h2>
   <p>
      The Brand agrees to pay the Influencer a fee of <b>{{FeeAmount}}</b>,
      payable via {{PaymentMethod}} within {{PaymentDays}} days of
      deliverable acceptance.
   </p>

   <h2>4. Term</h2>
   <p>
      This agreement covers the campaign period
      {{#StartDate}}from <b>{{StartDate}}</b> {{/StartDate}}{{#EndDate}}through <b>{{EndDate}}</b>{{/EndDate}}.
   </p>

   <h2>5. Signatures</h2>
   <div class="sig">
      <div class="line">{{BrandName}} (Brand)</div>
   </div>
   <div class="sig" style="float:right;">
      <div class="line">{{InfluencerName}} (Influencer)</div>
   </div>
</body>
</html>
`

var (
	Contract = MustacheMust(contractTmpl)
)
