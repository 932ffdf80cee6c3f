package ui

// Interpretation blocks shown under each chart. Authored in markdown and
// rendered server-side; the text describes the unfiltered dataset and does
// not change with the selection.

const interpretationAgeGroup = `We can notice that diabetes prevalence increases with age, especially for age groups 50-65 and 65+. This highlights the elderly as a high-risk group that needs targeted interventions.`

const interpretationGender = `The chart shows the distribution of diabetes among genders; the percentage of males with diabetes is higher than the percentage of females with diabetes.`

const interpretationSmoking = `Current and former smokers show higher rates of diabetes compared to never-smokers, supporting the evidence that smoking is a modifiable risk factor for diabetes.`

const interpretationHbA1c = `The boxplot shows a clear separation in HbA1c levels between diabetic and non-diabetic individuals. Diabetic patients tend to have higher and more variable HbA1c values, supporting the use of HbA1c as a reliable marker for diabetes diagnosis.`

const interpretationComorbidity = `The diabetes rate is significantly higher among individuals with hypertension and heart disease. Those who have both comorbidities show the highest prevalence of diabetes, highlighting a strong link between cardiovascular comorbidities and diabetes risk.`

const interpretationBMI = `The violin plot shows that individuals with diabetes tend to have a higher and more spread-out BMI distribution, reinforcing that excess body weight is a significant risk factor for developing diabetes.`

const interpretationGlucose = `The boxplot clearly shows that individuals with diabetes tend to have higher and more variable blood glucose levels. This supports the clinical definition of diabetes as a condition characterized by elevated blood sugar.`

const interpretationGenderAge = `The heatmap reveals a strong age-related trend in diabetes prevalence, with older adults (65+) having the highest diabetes rates.`

const interpretationCorrelation = `The correlation matrix shows that age and BMI have the strongest relationship among the clinical indicators, followed by a modest correlation between blood glucose and HbA1c.`

const interpretationAgeSmoking = `The heatmap shows a compounded effect of age and smoking on diabetes prevalence. Older individuals, especially those aged 65+, reveal significantly higher diabetes rates.`
